package service

import (
	"context"
	"strings"

	"github.com/verso/inkwell/api/internal/model"
)

// CommentRepository defines the interface for comment storage
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

// CommentService handles comment operations
type CommentService struct {
	commentRepo CommentRepository
	postRepo    PostRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo CommentRepository, postRepo PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateCommentRequest represents a comment creation request
type CreateCommentRequest struct {
	AuthorName string
	Content    string
}

// Create adds a comment to a post. An empty author name falls back to
// the anonymous default.
func (s *CommentService) Create(ctx context.Context, postID string, req CreateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrCommentContentRequired
	}
	if len(req.Content) > model.MaxCommentContentLength {
		return nil, ErrCommentTooLong
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		authorName = model.DefaultCommentAuthor
	}
	// Truncate on a rune boundary so a multi-byte name never persists
	// as invalid UTF-8.
	if runes := []rune(authorName); len(runes) > model.MaxCommentAuthorLength {
		authorName = string(runes[:model.MaxCommentAuthorLength])
	}

	comment := &model.Comment{
		PostID:     post.ID,
		AuthorName: authorName,
		Content:    req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForPost retrieves all comments on a post, oldest first.
func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	return s.commentRepo.ListByPost(ctx, postID)
}
