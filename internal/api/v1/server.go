package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/repository"
)

// Default limits for list endpoints.
const (
	DefaultHotLimit     = 4
	DefaultCommentLimit = 4
	ArticlesPerPage     = 8
)

// APIServer carries the data-service layer for the JSON API handlers.
type APIServer struct {
	repos *repository.Repositories
}

// NewAPIServer creates a new API server instance
func NewAPIServer(repos *repository.Repositories) *APIServer {
	return &APIServer{repos: repos}
}

// RegisterHandlers mounts the v1 resource routes on the given router.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	articleParam := RouteParamValidator("articleId")
	articleExists := ArticleExists(s.repos.Article)

	articles := router.Group("/articles")
	articles.Get("/", s.GetArticles)
	articles.Post("/", ArticleValidator(), s.CreateArticle)
	articles.Get("/:articleId", articleParam, s.GetArticle)
	articles.Put("/:articleId", ArticleValidator(), articleParam, articleExists, s.UpdateArticle)
	articles.Delete("/:articleId", articleParam, articleExists, s.DeleteArticle)

	articles.Get("/:articleId/comments", articleParam, articleExists, s.GetArticleComments)
	articles.Post("/:articleId/comments", CommentValidator(), articleParam, articleExists, s.CreateComment)
	articles.Delete("/:articleId/comments/:commentId", articleParam, RouteParamValidator("commentId"), articleExists, s.DeleteComment)

	categories := router.Group("/categories")
	categories.Get("/", s.GetCategories)
	categories.Post("/", CategoryValidator(), s.CreateCategory)
	categories.Get("/:categoryId", RouteParamValidator("categoryId"), s.GetCategory)
	categories.Put("/:categoryId", CategoryValidator(), RouteParamValidator("categoryId"), s.UpdateCategory)
	categories.Delete("/:categoryId", RouteParamValidator("categoryId"), s.DeleteCategory)

	router.Get("/comments", s.GetComments)

	router.Post("/user", UserValidator(), s.CreateUser)
	router.Post("/user/auth", s.AuthenticateUser)
}
