package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goccy/go-json"

	"github.com/typoteka/typoteka/app/repository"
	"github.com/typoteka/typoteka/internal/pkg/apiclient"
	"github.com/typoteka/typoteka/internal/pkg/cache"
	"github.com/typoteka/typoteka/internal/pkg/viewmodel"
)

const (
	ArticlesPerPage   = 8
	HotArticlesLimit  = 4
	LastCommentsLimit = 4

	hotCacheKey = "home:hot"
	hotCacheTTL = 5 * time.Minute
)

// MainController renders the landing and category pages.
type MainController struct {
	api *apiclient.Client
}

// NewMainController creates a main controller backed by the API client.
func NewMainController(api *apiclient.Client) *MainController {
	return &MainController{api: api}
}

// HandleHome renders the front page: hot articles, one page of the
// recent feed, categories with counts and the latest comments.
func (mc *MainController) HandleHome(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * ArticlesPerPage

	hot, err := mc.hotArticles()
	if err != nil {
		return mc.renderError(c, "load hot articles", err)
	}

	recent, err := mc.api.RecentArticles(ArticlesPerPage, offset)
	if err != nil {
		return mc.renderError(c, "load article page", err)
	}

	categories, err := mc.api.CategoriesWithCount()
	if err != nil {
		return mc.renderError(c, "load categories", err)
	}

	comments, err := mc.api.RecentComments(LastCommentsLimit)
	if err != nil {
		return mc.renderError(c, "load last comments", err)
	}

	totalPages := int((recent.Count + ArticlesPerPage - 1) / ArticlesPerPage)

	return c.Render("main", fiber.Map{
		"HotArticles":     hot,
		"PreviewArticles": recent.Articles,
		"Categories":      categories,
		"Comments":        comments,
		"Pagination":      viewmodel.NewPagination(page, totalPages),
	}, "layouts/main")
}

// HandleCategories renders the category overview.
func (mc *MainController) HandleCategories(c *fiber.Ctx) error {
	categories, err := mc.api.Categories()
	if err != nil {
		return mc.renderError(c, "load categories", err)
	}
	return c.Render("categories", fiber.Map{
		"Categories": categories,
	}, "layouts/main")
}

// hotArticles serves the trending ranking from the cache when fresh and
// falls back to the API otherwise.
func (mc *MainController) hotArticles() ([]repository.ArticleWithCommentCount, error) {
	if cached, err := cache.Get(hotCacheKey); err == nil {
		var hot []repository.ArticleWithCommentCount
		if err := json.Unmarshal([]byte(cached), &hot); err == nil {
			return hot, nil
		}
	}

	hot, err := mc.api.HotArticles(HotArticlesLimit)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(hot); err == nil {
		if err := cache.Set(hotCacheKey, encoded, hotCacheTTL); err != nil {
			log.Printf("Warning: could not cache hot articles: %v", err)
		}
	}
	return hot, nil
}

func (mc *MainController) renderError(c *fiber.Ctx, operation string, err error) error {
	log.Printf("main: %s failed: %v", operation, err)
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{}, "layouts/main")
}
