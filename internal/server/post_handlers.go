package server

import (
	"github.com/gofiber/fiber/v2"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/validation"
)

// CreatePost creates a post authored by the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req validation.PostRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	post, err := s.postService.Create(c.Context(), middleware.Principal(c), req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// GetPosts returns all posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postService.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

// GetPost returns a single post with its likes and comments.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	post, err := s.postService.GetByID(c.Context(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost removes a post owned by the authenticated user.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if err := s.postService.Delete(c.Context(), middleware.Principal(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Post removed"})
}

// LikePost records the authenticated user's like and returns the like list.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	likes, err := s.postService.Like(c.Context(), middleware.Principal(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// UnlikePost removes the authenticated user's like and returns the like list.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	likes, err := s.postService.Unlike(c.Context(), middleware.Principal(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(likes)
}

// CreateComment adds a comment to a post and returns the comment list.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req validation.CommentRequest
	if err := parseBody(c, &req); err != nil {
		return models.RespondWithError(c, err)
	}
	if violations := req.Validate(); len(violations) > 0 {
		return models.RespondWithError(c, models.NewFieldErrors(violations))
	}

	comments, err := s.postService.AddComment(c.Context(), middleware.Principal(c), postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}

// DeleteComment removes a comment owned by the authenticated user and
// returns the remaining comment list.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := paramID(c, "id", "Post")
	if err != nil {
		return models.RespondWithError(c, err)
	}
	commentID, err := paramID(c, "comment_id", "Comment")
	if err != nil {
		return models.RespondWithError(c, err)
	}

	comments, err := s.postService.RemoveComment(c.Context(), middleware.Principal(c), postID, commentID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(comments)
}
