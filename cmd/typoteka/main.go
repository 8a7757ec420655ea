package main

import (
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/typoteka/typoteka/app/repository"
	"github.com/typoteka/typoteka/internal/pkg/cache"
	"github.com/typoteka/typoteka/internal/pkg/database"
	"github.com/typoteka/typoteka/internal/pkg/env"
	"github.com/typoteka/typoteka/internal/pkg/router"
	"github.com/typoteka/typoteka/internal/pkg/viewmodel"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.DB)
	cache.SetupCache()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/typoteka to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	engine := html.New(basePath+"views", ".html")
	engine.AddFunc("humanizeDate", viewmodel.HumanizeDate)

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:       engine,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets")

	// ROUTER
	router.InstallRouter(app)

	return app
}
