package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/typoteka/typoteka/app/models"
)

// GetArticleComments serves all comments of one article, newest first.
func (s *APIServer) GetArticleComments(c *fiber.Ctx) error {
	articleID := c.Locals("articleId").(uint)

	comments, err := s.repos.Comment.GetByArticle(articleID)
	if err != nil {
		return internalError(c, "list comments", articleID, err)
	}
	return c.JSON(comments)
}

// CreateComment attaches a validated comment to an existing article.
func (s *APIServer) CreateComment(c *fiber.Ctx) error {
	articleID := c.Locals("articleId").(uint)
	payload := c.Locals(payloadKey).(*CommentPayload)

	comment := &models.Comment{
		Text:      payload.Text,
		ArticleID: articleID,
		UserID:    payload.UserID,
	}
	if err := s.repos.Comment.Create(comment); err != nil {
		return internalError(c, "create comment", articleID, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment removes one comment scoped by its parent article.
func (s *APIServer) DeleteComment(c *fiber.Ctx) error {
	articleID := c.Locals("articleId").(uint)
	commentID := c.Locals("commentId").(uint)

	comment, err := s.repos.Comment.GetOne(articleID, commentID)
	if err != nil {
		return internalError(c, "find comment", commentID, err)
	}
	if comment == nil {
		return c.Status(fiber.StatusNotFound).
			SendString("Cannot delete unexisting comment")
	}

	deleted, err := s.repos.Comment.Delete(articleID, commentID)
	if err != nil {
		return internalError(c, "delete comment", commentID, err)
	}
	return c.JSON(deleted)
}

// GetComments serves the newest comments across all articles.
func (s *APIServer) GetComments(c *fiber.Ctx) error {
	comments, err := s.repos.Comment.GetRecent(c.QueryInt("limit", DefaultCommentLimit))
	if err != nil {
		return internalError(c, "list recent comments", nil, err)
	}
	return c.JSON(comments)
}
