package apiclient

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/typoteka/typoteka/app/models"
	"github.com/typoteka/typoteka/app/repository"
)

// Client talks to the JSON API on behalf of the page controllers.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// StatusError carries a non-2xx API response. For validation failures
// Message holds the newline-joined messages produced by the API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Code, e.Message)
}

// Messages splits the response body into displayable lines.
func (e *StatusError) Messages() []string {
	return strings.Split(e.Message, "\n")
}

// IsNotFound reports whether err is a 404 API response.
func IsNotFound(err error) bool {
	statusErr, ok := err.(*StatusError)
	return ok && statusErr.Code == http.StatusNotFound
}

// IsValidation reports whether err is a 400 API response.
func IsValidation(err error) bool {
	statusErr, ok := err.(*StatusError)
	return ok && statusErr.Code == http.StatusBadRequest
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{Code: resp.StatusCode, Message: string(payload)}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// HotArticles fetches the top articles by comment count.
func (c *Client) HotArticles(limit int) ([]repository.ArticleWithCommentCount, error) {
	var result struct {
		Hot []repository.ArticleWithCommentCount `json:"hot"`
	}
	err := c.do(http.MethodGet, fmt.Sprintf("/articles?limit=%d", limit), nil, &result)
	return result.Hot, err
}

// RecentArticles fetches one page of the feed plus the total count.
func (c *Client) RecentArticles(limit, offset int) (*repository.ArticlePage, error) {
	var result struct {
		Recent repository.ArticlePage `json:"recent"`
	}
	err := c.do(http.MethodGet, fmt.Sprintf("/articles?limit=%d&offset=%d", limit, offset), nil, &result)
	if err != nil {
		return nil, err
	}
	return &result.Recent, nil
}

// Article fetches a single article.
func (c *Client) Article(id uint, needComments bool) (*models.Article, error) {
	var article models.Article
	err := c.do(http.MethodGet, fmt.Sprintf("/articles/%d?needComments=%t", id, needComments), nil, &article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// ArticlePayload mirrors the API's article body.
type ArticlePayload struct {
	Title      string `json:"title"`
	Announce   string `json:"announce"`
	FullText   string `json:"fullText"`
	Picture    string `json:"picture"`
	Categories []uint `json:"categories"`
	UserID     uint   `json:"userId"`
}

// CreateArticle posts a new article.
func (c *Client) CreateArticle(payload ArticlePayload) (*models.Article, error) {
	var article models.Article
	err := c.do(http.MethodPost, "/articles", payload, &article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateArticle puts new article columns by id.
func (c *Client) UpdateArticle(id uint, payload ArticlePayload) error {
	return c.do(http.MethodPut, fmt.Sprintf("/articles/%d", id), payload, nil)
}

// DeleteArticle removes an article by id.
func (c *Client) DeleteArticle(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil, nil)
}

// CommentPayload mirrors the API's comment body.
type CommentPayload struct {
	Text   string `json:"text"`
	UserID uint   `json:"userId"`
}

// CreateComment posts a comment under an article.
func (c *Client) CreateComment(articleID uint, payload CommentPayload) (*models.Comment, error) {
	var comment models.Comment
	err := c.do(http.MethodPost, fmt.Sprintf("/articles/%d/comments", articleID), payload, &comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// RecentComments fetches the newest comments across articles.
func (c *Client) RecentComments(limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.do(http.MethodGet, fmt.Sprintf("/comments?limit=%d", limit), nil, &comments)
	return comments, err
}

// Category fetches one category by id.
func (c *Client) Category(id uint) (*models.Category, error) {
	var category models.Category
	err := c.do(http.MethodGet, fmt.Sprintf("/categories/%d", id), nil, &category)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Categories fetches all categories.
func (c *Client) Categories() ([]models.Category, error) {
	var categories []models.Category
	err := c.do(http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

// CategoriesWithCount fetches non-empty categories with article counts.
func (c *Client) CategoriesWithCount() ([]models.CategoryWithCount, error) {
	var categories []models.CategoryWithCount
	err := c.do(http.MethodGet, "/categories?needCount=true", nil, &categories)
	return categories, err
}
