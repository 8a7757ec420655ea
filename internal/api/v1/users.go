package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/models"
)

// CreateUser registers a validated user. An already taken email is a
// conflict reported as 400.
func (s *APIServer) CreateUser(c *fiber.Ctx) error {
	payload := c.Locals(payloadKey).(*UserPayload)

	taken, err := s.repos.User.EmailTaken(payload.Email)
	if err != nil {
		return internalError(c, "check email", payload.Email, err)
	}
	if taken {
		return c.Status(fiber.StatusBadRequest).
			SendString(fmt.Sprintf("Email %s is already in use", payload.Email))
	}

	user, err := models.CreateUser(payload.FirstName, payload.LastName, payload.Email, payload.Password)
	if err != nil {
		return internalError(c, "build user", payload.Email, err)
	}
	if payload.Avatar != "" {
		user.AvatarFullsize = payload.Avatar
	}

	if err := s.repos.User.Create(user); err != nil {
		if isDuplicateErr(err) {
			return c.Status(fiber.StatusBadRequest).
				SendString(fmt.Sprintf("Email %s is already in use", payload.Email))
		}
		return internalError(c, "create user", payload.Email, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// AuthenticateUser checks email and password, answering the user on
// success and a generic 401 otherwise.
func (s *APIServer) AuthenticateUser(c *fiber.Ctx) error {
	payload := new(AuthPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Malformed request body")
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Email and password are required")
	}

	user, err := s.repos.User.GetByEmail(payload.Email)
	if err != nil {
		return internalError(c, "authenticate user", payload.Email, err)
	}
	if user == nil || !user.CheckPassword(payload.Password) {
		return c.Status(fiber.StatusUnauthorized).SendString("Wrong email or password")
	}
	return c.JSON(user)
}
