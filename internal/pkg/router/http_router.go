package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/controllers"
	"github.com/typoteka/typoteka/internal/pkg/apiclient"
	"github.com/typoteka/typoteka/internal/pkg/env"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	client := apiclient.New(env.GetEnv("API_BASE_URL", "http://localhost:4000/api/v1"))

	main := controllers.NewMainController(client)
	articles := controllers.NewArticlesController(client)

	group := app.Group("")
	group.Get("/", main.HandleHome)
	group.Get("/categories", main.HandleCategories)

	group.Get("/articles/add", articles.HandleArticleAdd)
	group.Post("/articles/add", articles.HandleArticleStore)
	group.Get("/articles/edit/:id", articles.HandleArticleEdit)
	group.Post("/articles/edit/:id", articles.HandleArticleUpdate)
	group.Get("/articles/category/:id", articles.HandleCategory)
	group.Get("/articles/:id", articles.HandleArticleShow)
	group.Post("/articles/:id/comments", articles.HandleCommentStore)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
