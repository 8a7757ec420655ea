package apiv1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typoteka/typoteka/app/models"
	"github.com/typoteka/typoteka/app/repository"
)

type stubArticleRepo struct {
	articles map[uint]*models.Article
	hot      []repository.ArticleWithCommentCount
	page     *repository.ArticlePage
	deleted  []uint
}

func (s *stubArticleRepo) Create(article *models.Article, categoryIDs []uint) error {
	article.ID = uint(len(s.articles) + 1)
	for _, id := range categoryIDs {
		article.Categories = append(article.Categories, models.Category{ID: id})
	}
	s.articles[article.ID] = article
	return nil
}

func (s *stubArticleRepo) Update(id uint, article *models.Article, categoryIDs []uint) (bool, error) {
	_, ok := s.articles[id]
	return ok, nil
}

func (s *stubArticleRepo) Delete(id uint) (bool, error) {
	if _, ok := s.articles[id]; !ok {
		return false, nil
	}
	delete(s.articles, id)
	s.deleted = append(s.deleted, id)
	return true, nil
}

func (s *stubArticleRepo) GetByID(id uint, needComments bool) (*models.Article, error) {
	article, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	return article, nil
}

func (s *stubArticleRepo) GetAll(needComments bool) ([]models.Article, error) {
	all := make([]models.Article, 0, len(s.articles))
	for _, article := range s.articles {
		all = append(all, *article)
	}
	return all, nil
}

func (s *stubArticleRepo) GetHot(limit int) ([]repository.ArticleWithCommentCount, error) {
	if limit < len(s.hot) {
		return s.hot[:limit], nil
	}
	return s.hot, nil
}

func (s *stubArticleRepo) GetPage(limit, offset int) (*repository.ArticlePage, error) {
	return s.page, nil
}

func (s *stubArticleRepo) Exists(id uint) (bool, error) {
	_, ok := s.articles[id]
	return ok, nil
}

type stubCategoryRepo struct {
	categories map[uint]*models.Category
	counts     []models.CategoryWithCount
}

func (s *stubCategoryRepo) Create(category *models.Category) error {
	category.ID = uint(len(s.categories) + 1)
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryRepo) Update(id uint, category *models.Category) (bool, error) {
	_, ok := s.categories[id]
	return ok, nil
}

func (s *stubCategoryRepo) Delete(id uint) (bool, error) {
	if _, ok := s.categories[id]; !ok {
		return false, nil
	}
	delete(s.categories, id)
	return true, nil
}

func (s *stubCategoryRepo) GetByID(id uint) (*models.Category, error) {
	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return category, nil
}

func (s *stubCategoryRepo) GetAll() ([]models.Category, error) {
	all := make([]models.Category, 0, len(s.categories))
	for _, category := range s.categories {
		all = append(all, *category)
	}
	return all, nil
}

func (s *stubCategoryRepo) GetAllWithCount() ([]models.CategoryWithCount, error) {
	return s.counts, nil
}

type stubCommentRepo struct {
	comments map[uint]*models.Comment
}

func (s *stubCommentRepo) Create(comment *models.Comment) error {
	comment.ID = uint(len(s.comments) + 1)
	s.comments[comment.ID] = comment
	return nil
}

func (s *stubCommentRepo) Delete(articleID, id uint) (bool, error) {
	comment, ok := s.comments[id]
	if !ok || comment.ArticleID != articleID {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

func (s *stubCommentRepo) GetOne(articleID, id uint) (*models.Comment, error) {
	comment, ok := s.comments[id]
	if !ok || comment.ArticleID != articleID {
		return nil, nil
	}
	return comment, nil
}

func (s *stubCommentRepo) GetByArticle(articleID uint) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range s.comments {
		if comment.ArticleID == articleID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

func (s *stubCommentRepo) GetRecent(limit int) ([]models.Comment, error) {
	out := make([]models.Comment, 0, len(s.comments))
	for _, comment := range s.comments {
		out = append(out, *comment)
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) Create(user *models.User) error {
	user.ID = uint(len(s.users) + 1)
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByID(id uint) (*models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (s *stubUserRepo) EmailTaken(email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func newTestApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()

	repos := &repository.Repositories{
		Article:  &stubArticleRepo{articles: map[uint]*models.Article{}},
		Category: &stubCategoryRepo{categories: map[uint]*models.Category{}},
		Comment:  &stubCommentRepo{comments: map[uint]*models.Comment{}},
		User:     &stubUserRepo{users: map[string]*models.User{}},
	}

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
	RegisterHandlers(app.Group("/api/v1"), NewAPIServer(repos))
	return app, repos
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(encoded))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, out))
}

func validArticleBody() map[string]interface{} {
	return map[string]interface{}{
		"title":      strings.Repeat("An unusually descriptive title ", 2),
		"announce":   strings.Repeat("A fittingly verbose announce. ", 2),
		"fullText":   "Short body.",
		"picture":    "forest@1x.jpg",
		"categories": []uint{1, 2},
		"userId":     1,
	}
}

func TestGetArticlesDefaultsToHotRanking(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Article.(*stubArticleRepo).hot = []repository.ArticleWithCommentCount{
		{ID: 2, CommentsCount: 5},
		{ID: 1, CommentsCount: 3},
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/articles", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Hot []repository.ArticleWithCommentCount `json:"hot"`
	}
	decodeBody(t, resp, &result)
	require.Len(t, result.Hot, 2)
	assert.Equal(t, uint(2), result.Hot[0].ID)
}

func TestGetArticlesPageReportsPrePaginationCount(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Article.(*stubArticleRepo).page = &repository.ArticlePage{
		Count:    5,
		Articles: []models.Article{{ID: 5}, {ID: 4}},
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/articles?limit=2&offset=0", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Recent repository.ArticlePage `json:"recent"`
	}
	decodeBody(t, resp, &result)
	assert.Equal(t, int64(5), result.Recent.Count)
	assert.Len(t, result.Recent.Articles, 2)
}

func TestCreateArticleReturns201(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles", validArticleBody())

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var article models.Article
	decodeBody(t, resp, &article)
	assert.NotZero(t, article.ID)
	assert.Len(t, article.Categories, 2)
}

func TestCreateArticleWithoutCategoriesIs400(t *testing.T) {
	app, _ := newTestApp(t)

	body := validArticleBody()
	body["categories"] = []uint{}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles", body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateArticleWithMissingTitleIs400WithMessage(t *testing.T) {
	app, _ := newTestApp(t)

	body := validArticleBody()
	delete(body, "title")
	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles", body)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(payload), "Title")
}

func TestGetArticleWithMalformedIDIs400(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/articles/abc", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMissingArticleIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/articles/999", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateMissingArticleIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/v1/articles/999", validArticleBody())

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMissingArticleIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/articles/999", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteArticleRoundTrip(t *testing.T) {
	app, repos := newTestApp(t)
	stub := repos.Article.(*stubArticleRepo)
	stub.articles[7] = &models.Article{ID: 7}

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/articles/7", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []uint{7}, stub.deleted)
}

func TestCreateCommentUnderMissingArticleIs404(t *testing.T) {
	app, _ := newTestApp(t)

	body := map[string]interface{}{"text": strings.Repeat("valid comment text ", 3), "userId": 1}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles/999/comments", body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateShortCommentIs400(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Article.(*stubArticleRepo).articles[1] = &models.Article{ID: 1}

	body := map[string]interface{}{"text": "too short", "userId": 1}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles/1/comments", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCommentReturns201(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Article.(*stubArticleRepo).articles[1] = &models.Article{ID: 1}

	body := map[string]interface{}{"text": strings.Repeat("valid comment text ", 3), "userId": 1}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/articles/1/comments", body)

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var comment models.Comment
	decodeBody(t, resp, &comment)
	assert.Equal(t, uint(1), comment.ArticleID)
}

func TestDeleteMissingCommentIs404(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Article.(*stubArticleRepo).articles[1] = &models.Article{ID: 1}

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/articles/1/comments/42", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetCategoriesWithCount(t *testing.T) {
	app, repos := newTestApp(t)
	repos.Category.(*stubCategoryRepo).counts = []models.CategoryWithCount{
		{ID: 1, Name: "Music", Count: 3},
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories?needCount=true", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []models.CategoryWithCount
	decodeBody(t, resp, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, int64(3), categories[0].Count)
}

func TestGetMissingCategoryIs404(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/categories/5", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func validUserBody() map[string]interface{} {
	return map[string]interface{}{
		"firstName":        "Ivan",
		"lastName":         "Ivanov",
		"email":            "ivanov@example.com",
		"password":         "123456",
		"passwordRepeated": "123456",
	}
}

func TestCreateUserReturns201(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/user", validUserBody())

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateUserWithMismatchedPasswordsIs400(t *testing.T) {
	app, _ := newTestApp(t)

	body := validUserBody()
	body["passwordRepeated"] = "654321"
	resp := doJSON(t, app, http.MethodPost, "/api/v1/user", body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateUserWithTakenEmailIs400(t *testing.T) {
	app, repos := newTestApp(t)
	repos.User.(*stubUserRepo).users["ivanov@example.com"] = &models.User{ID: 1, Email: "ivanov@example.com"}

	resp := doJSON(t, app, http.MethodPost, "/api/v1/user", validUserBody())

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthenticateUser(t *testing.T) {
	app, repos := newTestApp(t)
	hash, err := models.HashPassword("ivanov")
	require.NoError(t, err)
	repos.User.(*stubUserRepo).users["ivanov@example.com"] = &models.User{
		ID:           1,
		Email:        "ivanov@example.com",
		PasswordHash: hash,
	}

	good := doJSON(t, app, http.MethodPost, "/api/v1/user/auth",
		map[string]string{"email": "ivanov@example.com", "password": "ivanov"})
	assert.Equal(t, http.StatusOK, good.StatusCode)

	badPassword := doJSON(t, app, http.MethodPost, "/api/v1/user/auth",
		map[string]string{"email": "ivanov@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, badPassword.StatusCode)

	badEmail := doJSON(t, app, http.MethodPost, "/api/v1/user/auth",
		map[string]string{"email": "nobody@example.com", "password": "ivanov"})
	assert.Equal(t, http.StatusUnauthorized, badEmail.StatusCode)
}
