package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/typoteka/typoteka/app/repository"
	apiv1 "github.com/typoteka/typoteka/internal/api/v1"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api", limiter.New())
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	// API v1 routes
	v1 := api.Group("/v1")
	apiServer := apiv1.NewAPIServer(repository.GetGlobalRepositories())
	apiv1.RegisterHandlers(v1, apiServer)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
