package handler

import (
	"net/http"
	"time"

	"github.com/verso/inkwell/api/internal/model"
	"github.com/verso/inkwell/api/internal/service"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// CreateCommentRequest represents the comment creation request body
type CreateCommentRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID         string `json:"id"`
	PostID     string `json:"post_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedOn  string `json:"created_on"`
	UpdatedOn  string `json:"updated_on"`
}

// Create handles POST /v1/posts/{postId}/comments
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	var req CreateCommentRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	comment, err := h.commentService.Create(r.Context(), postID, service.CreateCommentRequest{
		AuthorName: req.AuthorName,
		Content:    req.Content,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, toCommentResponse(comment), map[string]string{
		"post": "/v1/posts/" + postID,
	})
}

// List handles GET /v1/posts/{postId}/comments
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	postID := r.PathValue("postId")

	comments, err := h.commentService.ListForPost(r.Context(), postID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		response = append(response, toCommentResponse(comment))
	}

	WriteData(w, http.StatusOK, response, map[string]string{
		"self": "/v1/posts/" + postID + "/comments",
		"post": "/v1/posts/" + postID,
	})
}

func toCommentResponse(comment *model.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		PostID:     comment.PostID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		CreatedOn:  comment.CreatedOn.Format(time.RFC3339),
		UpdatedOn:  comment.UpdatedOn.Format(time.RFC3339),
	}
}
