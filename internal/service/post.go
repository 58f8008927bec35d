package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/verso/inkwell/api/internal/model"
)

// PostRepository defines the interface for post storage
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, id, title, content string) error
	DeleteWithComments(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int, error)
	AddSaver(ctx context.Context, postID, userID string) error
	RemoveSaver(ctx context.Context, postID, userID string) error
}

// ImageStore removes uploaded images that are no longer referenced.
type ImageStore interface {
	Remove(publicPath string) error
}

// PostService handles post operations
type PostService struct {
	postRepo PostRepository
	userRepo UserRepository
	images   ImageStore
	logger   *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(postRepo PostRepository, userRepo UserRepository, images ImageStore, logger *slog.Logger) *PostService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		images:   images,
		logger:   logger,
	}
}

// CreatePostRequest represents a post creation request. AuthorID is
// nil when the caller is not authenticated; the post is then anonymous.
type CreatePostRequest struct {
	Title    string
	Content  string
	ImageURL *string
	AuthorID *string
}

// Create publishes a new post.
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > model.MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	post := &model.Post{
		Title:    title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: req.AuthorID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get retrieves a single post.
func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetWithAuthor retrieves a post together with its resolved author.
func (s *PostService) GetWithAuthor(ctx context.Context, id string) (*model.PostWithAuthor, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &model.PostWithAuthor{Post: post}
	if post.AuthorID != nil {
		author, err := s.userRepo.GetByID(ctx, *post.AuthorID)
		if err != nil {
			return nil, err
		}
		// A deleted author leaves the post anonymous rather than failing
		// the read.
		result.Author = author.Summary()
	}
	return result, nil
}

// List retrieves all posts, newest first, with authors resolved.
func (s *PostService) List(ctx context.Context) ([]*model.PostWithAuthor, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Resolve each distinct author once.
	authors := make(map[string]*model.UserSummary)
	for _, post := range posts {
		if post.AuthorID == nil {
			continue
		}
		if _, seen := authors[*post.AuthorID]; seen {
			continue
		}
		author, err := s.userRepo.GetByID(ctx, *post.AuthorID)
		if err != nil {
			return nil, err
		}
		authors[*post.AuthorID] = author.Summary()
	}

	result := make([]*model.PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		entry := &model.PostWithAuthor{Post: post}
		if post.AuthorID != nil {
			entry.Author = authors[*post.AuthorID]
		}
		result = append(result, entry)
	}
	return result, nil
}

// UpdatePostRequest represents a post update request
type UpdatePostRequest struct {
	Title   string
	Content string
}

// Update replaces the title and content of an existing post.
func (s *PostService) Update(ctx context.Context, id string, req UpdatePostRequest) (*model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(title) > model.MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}
	if len(req.Content) > model.MaxContentLength {
		return nil, ErrContentTooLong
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := s.postRepo.Update(ctx, id, title, req.Content); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete removes a post, its comments and its uploaded image. The post
// and comments go atomically; image cleanup is best effort.
func (s *PostService) Delete(ctx context.Context, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.DeleteWithComments(ctx, id); err != nil {
		return err
	}

	if post.ImageURL != nil && s.images != nil {
		if err := s.images.Remove(*post.ImageURL); err != nil {
			s.logger.Warn("failed to remove post image",
				"post_id", id,
				"image_url", *post.ImageURL,
				"error", err)
		}
	}
	return nil
}

// RecordView bumps the view counter and returns the new count.
func (s *PostService) RecordView(ctx context.Context, id string) (int, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return 0, err
	}
	return s.postRepo.IncrementViews(ctx, id)
}

// Save bookmarks a post for a user. Saving an already saved post is a
// no-op: the operation reports success and the bookmark set is
// unchanged.
func (s *PostService) Save(ctx context.Context, postID, userID string) (*model.Post, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.AddSaver(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, postID)
}

// Unsave removes a user's bookmark. Unsaving a post that was never
// saved is equally a no-op.
func (s *PostService) Unsave(ctx context.Context, postID, userID string) (*model.Post, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.postRepo.RemoveSaver(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.Get(ctx, postID)
}
