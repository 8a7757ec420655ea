package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/models"
)

// GetArticles serves the article collection in one of three shapes:
// every article of the publication feed (?user=1), one page of the
// feed (?offset=...&limit=...), or the hot ranking (?limit=...).
func (s *APIServer) GetArticles(c *fiber.Ctx) error {
	if c.Query("user") != "" {
		articles, err := s.repos.Article.GetAll(c.QueryBool("needComments"))
		if err != nil {
			return internalError(c, "list articles", nil, err)
		}
		return c.JSON(fiber.Map{"current": articles})
	}

	if c.Query("offset") != "" {
		page, err := s.repos.Article.GetPage(c.QueryInt("limit", ArticlesPerPage), c.QueryInt("offset"))
		if err != nil {
			return internalError(c, "page articles", nil, err)
		}
		return c.JSON(fiber.Map{"recent": page})
	}

	hot, err := s.repos.Article.GetHot(c.QueryInt("limit", DefaultHotLimit))
	if err != nil {
		return internalError(c, "rank articles", nil, err)
	}
	return c.JSON(fiber.Map{"hot": hot})
}

// GetArticle serves a single article; categories are always included,
// comments only with ?needComments=true.
func (s *APIServer) GetArticle(c *fiber.Ctx) error {
	id := c.Locals("articleId").(uint)

	article, err := s.repos.Article.GetByID(id, c.QueryBool("needComments"))
	if err != nil {
		return internalError(c, "find article", id, err)
	}
	if article == nil {
		return c.Status(fiber.StatusNotFound).
			SendString(fmt.Sprintf("Unable to find article with id:%d", id))
	}
	return c.JSON(article)
}

// CreateArticle inserts a validated article with its categories.
func (s *APIServer) CreateArticle(c *fiber.Ctx) error {
	payload := c.Locals(payloadKey).(*ArticlePayload)

	article := &models.Article{
		Title:    payload.Title,
		Announce: payload.Announce,
		FullText: payload.FullText,
		Picture:  payload.Picture,
	}
	if err := s.repos.Article.Create(article, payload.Categories); err != nil {
		return internalError(c, "create article", nil, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateArticle updates a validated article by primary key.
func (s *APIServer) UpdateArticle(c *fiber.Ctx) error {
	id := c.Locals("articleId").(uint)
	payload := c.Locals(payloadKey).(*ArticlePayload)

	article := &models.Article{
		Title:    payload.Title,
		Announce: payload.Announce,
		FullText: payload.FullText,
		Picture:  payload.Picture,
	}
	updated, err := s.repos.Article.Update(id, article, payload.Categories)
	if err != nil {
		return internalError(c, "update article", id, err)
	}
	if !updated {
		return c.Status(fiber.StatusNotFound).
			SendString(fmt.Sprintf("Unable to find article with id:%d", id))
	}
	return c.SendString("Updated")
}

// DeleteArticle removes an article by primary key.
func (s *APIServer) DeleteArticle(c *fiber.Ctx) error {
	id := c.Locals("articleId").(uint)

	deleted, err := s.repos.Article.Delete(id)
	if err != nil {
		return internalError(c, "delete article", id, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).
			SendString("Unable to delete unexisting article!")
	}
	return c.JSON(deleted)
}
