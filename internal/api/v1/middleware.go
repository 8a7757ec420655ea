package apiv1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/repository"
)

var validate = validator.New()

// ArticlePayload is the request body for article create/update.
type ArticlePayload struct {
	Title      string `json:"title" validate:"required,min=30,max=250"`
	Announce   string `json:"announce" validate:"required,min=30,max=250"`
	FullText   string `json:"fullText" validate:"max=1000"`
	Picture    string `json:"picture" validate:"max=255"`
	Categories []uint `json:"categories" validate:"required,min=1,dive,gt=0"`
	UserID     uint   `json:"userId"`
}

// CommentPayload is the request body for comment creation.
type CommentPayload struct {
	Text   string `json:"text" validate:"required,min=20"`
	UserID uint   `json:"userId" validate:"required,gt=0"`
}

// CategoryPayload is the request body for category create/update.
type CategoryPayload struct {
	Name string `json:"name" validate:"required,min=5,max=30"`
}

// UserPayload is the request body for user registration.
type UserPayload struct {
	FirstName        string `json:"firstName" validate:"required,alphaunicode,max=150"`
	LastName         string `json:"lastName" validate:"required,alphaunicode,max=150"`
	Email            string `json:"email" validate:"required,email,min=5,max=200"`
	Password         string `json:"password" validate:"required,min=6"`
	PasswordRepeated string `json:"passwordRepeated" validate:"required,eqfield=Password"`
	Avatar           string `json:"avatar" validate:"max=255"`
}

// AuthPayload is the request body for user authentication.
type AuthPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

const payloadKey = "payload"

// RouteParamValidator rejects route parameters that are not positive
// integers with 400 before any handler runs. The parsed value is placed
// in Locals under the parameter name.
func RouteParamValidator(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params(param)
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || value == 0 {
			return c.Status(fiber.StatusBadRequest).
				SendString(fmt.Sprintf("Route parameter %s is invalid: %s", param, raw))
		}
		c.Locals(param, uint(value))
		return c.Next()
	}
}

// ArticleExists resolves the articleId parameter to a confirmed row or
// answers 404.
func ArticleExists(articles repository.ArticleRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Locals("articleId").(uint)
		exists, err := articles.Exists(id)
		if err != nil {
			return internalError(c, "check article", id, err)
		}
		if !exists {
			return c.Status(fiber.StatusNotFound).
				SendString(fmt.Sprintf("Unable to find article with id:%d", id))
		}
		return c.Next()
	}
}

// ArticleValidator parses and validates the article body, answering 400
// with human-readable messages on shape violations.
func ArticleValidator() fiber.Handler {
	return payloadValidator(func() interface{} { return new(ArticlePayload) })
}

// CommentValidator parses and validates the comment body.
func CommentValidator() fiber.Handler {
	return payloadValidator(func() interface{} { return new(CommentPayload) })
}

// CategoryValidator parses and validates the category body.
func CategoryValidator() fiber.Handler {
	return payloadValidator(func() interface{} { return new(CategoryPayload) })
}

// UserValidator parses and validates the registration body.
func UserValidator() fiber.Handler {
	return payloadValidator(func() interface{} { return new(UserPayload) })
}

func payloadValidator(newPayload func() interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := newPayload()
		if err := c.BodyParser(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Malformed request body")
		}
		if err := validate.Struct(payload); err != nil {
			return c.Status(fiber.StatusBadRequest).
				SendString(strings.Join(validationMessages(err), "\n"))
		}
		c.Locals(payloadKey, payload)
		return c.Next()
	}
}

// validationMessages turns validator errors into the newline-joined
// human-readable form the clients display.
func validationMessages(err error) []string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("Field %s is required", fieldErr.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("Field %s is below the minimum length %s", fieldErr.Field(), fieldErr.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("Field %s exceeds the maximum length %s", fieldErr.Field(), fieldErr.Param()))
		case "email":
			messages = append(messages, fmt.Sprintf("Field %s must be a valid email", fieldErr.Field()))
		case "eqfield":
			messages = append(messages, fmt.Sprintf("Field %s must match %s", fieldErr.Field(), fieldErr.Param()))
		default:
			messages = append(messages, fmt.Sprintf("Field %s is invalid", fieldErr.Field()))
		}
	}
	return messages
}
