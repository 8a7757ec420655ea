package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/typoteka/typoteka/internal/pkg/apiclient"
)

// ArticlesController renders article pages and submits editor forms to
// the API.
type ArticlesController struct {
	api *apiclient.Client
}

// NewArticlesController creates an articles controller backed by the API client.
func NewArticlesController(api *apiclient.Client) *ArticlesController {
	return &ArticlesController{api: api}
}

// HandleArticleShow renders one article with its comments.
func (ac *ArticlesController) HandleArticleShow(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return ac.renderNotFound(c)
	}

	article, err := ac.api.Article(id, true)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ac.renderNotFound(c)
		}
		return ac.renderError(c, "load article", err)
	}

	return c.Render("article", fiber.Map{
		"Article": article,
		"Flash":   flash.Get(c),
	}, "layouts/main")
}

// HandleArticleAdd renders the editor for a new article.
func (ac *ArticlesController) HandleArticleAdd(c *fiber.Ctx) error {
	categories, err := ac.api.Categories()
	if err != nil {
		return ac.renderError(c, "load categories", err)
	}
	return c.Render("editor", fiber.Map{
		"Categories": categories,
		"Flash":      flash.Get(c),
	}, "layouts/main")
}

// HandleArticleStore submits the editor form to the API. Validation
// failures flash the API's messages back onto the editor.
func (ac *ArticlesController) HandleArticleStore(c *fiber.Ctx) error {
	payload := articleForm(c)

	article, err := ac.api.CreateArticle(payload)
	if err != nil {
		if apiclient.IsValidation(err) {
			return ac.flashMessages(c, err, "/articles/add")
		}
		return ac.renderError(c, "create article", err)
	}
	return c.Redirect("/articles/" + strconv.FormatUint(uint64(article.ID), 10))
}

// HandleArticleEdit renders the editor pre-filled with an article.
func (ac *ArticlesController) HandleArticleEdit(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return ac.renderNotFound(c)
	}

	article, err := ac.api.Article(id, false)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ac.renderNotFound(c)
		}
		return ac.renderError(c, "load article", err)
	}

	categories, err := ac.api.Categories()
	if err != nil {
		return ac.renderError(c, "load categories", err)
	}

	return c.Render("editor", fiber.Map{
		"Article":    article,
		"Categories": categories,
		"Flash":      flash.Get(c),
	}, "layouts/main")
}

// HandleArticleUpdate submits the edited article to the API.
func (ac *ArticlesController) HandleArticleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return ac.renderNotFound(c)
	}

	if err := ac.api.UpdateArticle(id, articleForm(c)); err != nil {
		if apiclient.IsValidation(err) {
			return ac.flashMessages(c, err, "/articles/edit/"+c.Params("id"))
		}
		if apiclient.IsNotFound(err) {
			return ac.renderNotFound(c)
		}
		return ac.renderError(c, "update article", err)
	}
	return c.Redirect("/articles/" + c.Params("id"))
}

// HandleCommentStore submits a new comment to the API.
func (ac *ArticlesController) HandleCommentStore(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return ac.renderNotFound(c)
	}

	userID, _ := strconv.ParseUint(c.FormValue("userId"), 10, 32)
	payload := apiclient.CommentPayload{
		Text:   c.FormValue("text"),
		UserID: uint(userID),
	}

	if _, err := ac.api.CreateComment(id, payload); err != nil {
		if apiclient.IsValidation(err) {
			return ac.flashMessages(c, err, "/articles/"+c.Params("id"))
		}
		if apiclient.IsNotFound(err) {
			return ac.renderNotFound(c)
		}
		return ac.renderError(c, "create comment", err)
	}
	return c.Redirect("/articles/" + c.Params("id"))
}

// HandleCategory renders the by-category listing page.
func (ac *ArticlesController) HandleCategory(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return ac.renderNotFound(c)
	}

	category, err := ac.api.Category(id)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return ac.renderNotFound(c)
		}
		return ac.renderError(c, "load category", err)
	}

	categories, err := ac.api.CategoriesWithCount()
	if err != nil {
		return ac.renderError(c, "load categories", err)
	}

	return c.Render("category", fiber.Map{
		"Category":   category,
		"Categories": categories,
	}, "layouts/main")
}

func articleForm(c *fiber.Ctx) apiclient.ArticlePayload {
	var categories []uint
	for _, raw := range c.Context().PostArgs().PeekMulti("categories") {
		if id, err := strconv.ParseUint(string(raw), 10, 32); err == nil {
			categories = append(categories, uint(id))
		}
	}

	userID, _ := strconv.ParseUint(c.FormValue("userId"), 10, 32)
	return apiclient.ArticlePayload{
		Title:      c.FormValue("title"),
		Announce:   c.FormValue("announce"),
		FullText:   c.FormValue("fullText"),
		Picture:    c.FormValue("picture"),
		Categories: categories,
		UserID:     uint(userID),
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}

func (ac *ArticlesController) flashMessages(c *fiber.Ctx, err error, location string) error {
	statusErr := err.(*apiclient.StatusError)
	fm := fiber.Map{
		"type":     "error",
		"messages": statusErr.Message,
	}
	return flash.WithError(c, fm).Redirect(location)
}

func (ac *ArticlesController) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{}, "layouts/main")
}

func (ac *ArticlesController) renderError(c *fiber.Ctx, operation string, err error) error {
	log.Printf("articles: %s failed: %v", operation, err)
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{}, "layouts/main")
}
