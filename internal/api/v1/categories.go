package apiv1

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/models"
)

// GetCategories serves all categories; with ?needCount=true the result
// is restricted to categories that have at least one linked article and
// carries per-category article counts.
func (s *APIServer) GetCategories(c *fiber.Ctx) error {
	if c.QueryBool("needCount") {
		categories, err := s.repos.Category.GetAllWithCount()
		if err != nil {
			return internalError(c, "count categories", nil, err)
		}
		return c.JSON(categories)
	}

	categories, err := s.repos.Category.GetAll()
	if err != nil {
		return internalError(c, "list categories", nil, err)
	}
	return c.JSON(categories)
}

// GetCategory serves one category by primary key.
func (s *APIServer) GetCategory(c *fiber.Ctx) error {
	id := c.Locals("categoryId").(uint)

	category, err := s.repos.Category.GetByID(id)
	if err != nil {
		return internalError(c, "find category", id, err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).
			SendString(fmt.Sprintf("Unable to find category with id:%d", id))
	}
	return c.JSON(category)
}

// CreateCategory inserts a validated category. A duplicate name is a
// conflict reported as 400.
func (s *APIServer) CreateCategory(c *fiber.Ctx) error {
	payload := c.Locals(payloadKey).(*CategoryPayload)

	category := &models.Category{Name: payload.Name}
	if err := s.repos.Category.Create(category); err != nil {
		if isDuplicateErr(err) {
			return c.Status(fiber.StatusBadRequest).
				SendString(fmt.Sprintf("Category %q already exists", payload.Name))
		}
		return internalError(c, "create category", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory renames a category by primary key.
func (s *APIServer) UpdateCategory(c *fiber.Ctx) error {
	id := c.Locals("categoryId").(uint)
	payload := c.Locals(payloadKey).(*CategoryPayload)

	updated, err := s.repos.Category.Update(id, &models.Category{Name: payload.Name})
	if err != nil {
		if isDuplicateErr(err) {
			return c.Status(fiber.StatusBadRequest).
				SendString(fmt.Sprintf("Category %q already exists", payload.Name))
		}
		return internalError(c, "update category", id, err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).
			SendString(fmt.Sprintf("Unable to find category with id:%d", id))
	}
	return c.SendString("Updated")
}

// DeleteCategory removes a category by primary key.
func (s *APIServer) DeleteCategory(c *fiber.Ctx) error {
	id := c.Locals("categoryId").(uint)

	deleted, err := s.repos.Category.Delete(id)
	if err != nil {
		return internalError(c, "delete category", id, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).
			SendString("Unable to delete unexisting category!")
	}
	return c.JSON(deleted)
}

// isDuplicateErr detects unique-constraint violations from the store.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
