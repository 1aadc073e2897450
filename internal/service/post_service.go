package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// PostService handles posts and their like and comment lists.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// Create writes a new post carrying a snapshot of the author's current name
// and avatar. The snapshot is frozen at write time.
func (s *PostService) Create(ctx context.Context, principal uint, text string) (*models.Post, error) {
	author, err := s.userRepo.GetByID(ctx, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}

	post := &models.Post{
		UserID: principal,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	return post, nil
}

// Delete removes a post. Only the author may delete it.
func (s *PostService) Delete(ctx context.Context, principal, postID uint) error {
	post, err := s.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !owns(principal, post.UserID) {
		return models.NewForbiddenError("User not authorized")
	}
	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Like records that the acting user likes a post. Liking a post twice is a
// conflict. Returns the post's like list after the change.
func (s *PostService) Like(ctx context.Context, principal, postID uint) ([]models.Like, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	created, err := s.postRepo.Like(ctx, principal, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !created {
		return nil, models.NewConflictError("Post already liked")
	}
	return s.likes(ctx, postID)
}

// Unlike removes the acting user's like. Unliking a post that was never
// liked is a conflict.
func (s *PostService) Unlike(ctx context.Context, principal, postID uint) ([]models.Like, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	removed, err := s.postRepo.Unlike(ctx, principal, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !removed {
		return nil, models.NewConflictError("Post has not yet been liked")
	}
	return s.likes(ctx, postID)
}

func (s *PostService) likes(ctx context.Context, postID uint) ([]models.Like, error) {
	likes, err := s.postRepo.Likes(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

// AddComment appends a comment carrying the commenter's name and avatar
// snapshot. Returns the post's comment list after the change.
func (s *PostService) AddComment(ctx context.Context, principal, postID uint, text string) ([]models.Comment, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, principal)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User")
		}
		return nil, models.NewInternalError(err)
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: principal,
		Text:   text,
		Name:   author.Name,
		Avatar: author.Avatar,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.comments(ctx, postID)
}

// RemoveComment deletes a comment from a post. Only the comment's author may
// remove it.
func (s *PostService) RemoveComment(ctx context.Context, principal, postID, commentID uint) ([]models.Comment, error) {
	if _, err := s.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment")
		}
		return nil, models.NewInternalError(err)
	}
	if !owns(principal, comment.UserID) {
		return nil, models.NewForbiddenError("User not authorized")
	}
	if err := s.postRepo.RemoveComment(ctx, postID, commentID); err != nil {
		return nil, models.NewInternalError(err)
	}
	return s.comments(ctx, postID)
}

func (s *PostService) comments(ctx context.Context, postID uint) ([]models.Comment, error) {
	comments, err := s.postRepo.Comments(ctx, postID)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
