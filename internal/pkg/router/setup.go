package router

import (
	"github.com/gofiber/fiber/v2"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App) {
	// The API router goes first so that the catch-all error page of the
	// HTTP router never shadows /api paths.
	setup(app, NewApiRouter(), NewHttpRouter())
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
