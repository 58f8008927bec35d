package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/verso/inkwell/api/internal/middleware"
	"github.com/verso/inkwell/api/internal/model"
	"github.com/verso/inkwell/api/internal/service"
)

// UploadSaver persists an uploaded image and returns its public path.
type UploadSaver interface {
	Save(file io.Reader, originalName string) (string, error)
}

// PostHandler handles post endpoints
type PostHandler struct {
	postService    *service.PostService
	uploads        UploadSaver
	maxUploadBytes int64
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService, uploads UploadSaver, maxUploadBytes int64) *PostHandler {
	return &PostHandler{
		postService:    postService,
		uploads:        uploads,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreatePostRequest represents the post creation request body
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePostRequest represents the post update request body
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Author    *UserSummaryResponse `json:"author,omitempty"`
	ImageURL  *string              `json:"image_url,omitempty"`
	SavedBy   []string             `json:"saved_by"`
	Views     int                  `json:"views"`
	CreatedOn string               `json:"created_on"`
	UpdatedOn string               `json:"updated_on"`
}

// List handles GET /v1/posts
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := make([]PostResponse, 0, len(posts))
	for _, entry := range posts {
		response = append(response, toPostResponse(entry.Post, entry.Author))
	}

	WriteData(w, http.StatusOK, response, map[string]string{
		"self": "/v1/posts",
	})
}

// Create handles POST /v1/posts. Authentication is optional: an
// authenticated caller becomes the post's author, everyone else
// publishes anonymously. The body is either JSON or multipart form
// data with an optional image file.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	var imageURL *string

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		// Cap the whole multipart body at the configured upload limit.
		// ParseMultipartForm's argument is only the in-memory spill
		// threshold and enforces nothing.
		if h.maxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
		}
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteError(w, model.NewPayloadTooLargeError(h.maxUploadBytes))
				return
			}
			WriteError(w, model.NewBadRequestError("invalid multipart form"))
			return
		}
		req.Title = r.FormValue("title")
		req.Content = r.FormValue("content")

		file, header, err := r.FormFile("image")
		if err == nil {
			defer func() { _ = file.Close() }()
			if h.uploads == nil {
				WriteError(w, model.NewBadRequestError("image uploads are not enabled"))
				return
			}
			publicPath, err := h.uploads.Save(file, header.Filename)
			if err != nil {
				WriteError(w, model.NewInternalError("failed to store image"))
				return
			}
			imageURL = &publicPath
		} else if err != http.ErrMissingFile {
			WriteError(w, model.NewBadRequestError("invalid image upload"))
			return
		}
	} else {
		if err := DecodeJSON(r, &req); err != nil {
			WriteError(w, model.NewBadRequestError("invalid request body"))
			return
		}
	}

	var authorID *string
	if userID := middleware.GetUserID(r.Context()); userID != "" {
		authorID = &userID
	}

	post, err := h.postService.Create(r.Context(), service.CreatePostRequest{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: imageURL,
		AuthorID: authorID,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toPostResponse(post, nil), map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

// Get handles GET /v1/posts/{postId}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	entry, err := h.postService.GetWithAuthor(r.Context(), postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toPostResponse(entry.Post, entry.Author), map[string]string{
		"self":     "/v1/posts/" + entry.Post.ID,
		"comments": "/v1/posts/" + entry.Post.ID + "/comments",
	})
}

// Update handles PATCH /v1/posts/{postId}
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	var req UpdatePostRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	post, err := h.postService.Update(r.Context(), postID, service.UpdatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toPostResponse(post, nil), map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

// Delete handles DELETE /v1/posts/{postId}
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	if err := h.postService.Delete(r.Context(), postID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// RecordView handles POST /v1/posts/{postId}/views
func (h *PostHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	views, err := h.postService.RecordView(r.Context(), postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := struct {
		Views int `json:"views"`
	}{Views: views}

	WriteData(w, http.StatusOK, response, nil)
}

// Save handles POST /v1/posts/{postId}/save. Requires authentication;
// repeating the call for an already saved post succeeds unchanged.
func (h *PostHandler) Save(w http.ResponseWriter, r *http.Request) {
	h.updateSaved(w, r, h.postService.Save)
}

// Unsave handles POST /v1/posts/{postId}/unsave
func (h *PostHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	h.updateSaved(w, r, h.postService.Unsave)
}

func (h *PostHandler) updateSaved(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, postID, userID string) (*model.Post, error)) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	postID := r.PathValue("postId")

	post, err := op(r.Context(), postID, userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, toPostResponse(post, nil), map[string]string{
		"self": "/v1/posts/" + post.ID,
	})
}

func toPostResponse(post *model.Post, author *model.UserSummary) PostResponse {
	response := PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		ImageURL:  post.ImageURL,
		SavedBy:   post.SavedBy,
		Views:     post.Views,
		CreatedOn: post.CreatedOn.Format(time.RFC3339),
		UpdatedOn: post.UpdatedOn.Format(time.RFC3339),
	}
	if response.SavedBy == nil {
		response.SavedBy = []string{}
	}
	if author != nil {
		summary := toUserSummaryResponse(author)
		response.Author = &summary
	} else if post.AuthorID != nil {
		response.Author = &UserSummaryResponse{ID: *post.AuthorID}
	}
	return response
}
