package handler

import (
	"net/http"

	"github.com/verso/inkwell/api/internal/model"
	"github.com/verso/inkwell/api/internal/service"
)

// UserHandler handles user listing endpoints
type UserHandler struct {
	authService *service.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// UserSummaryResponse is the public projection of a user
type UserSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// List handles GET /v1/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.authService.ListUsers(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	response := make([]UserSummaryResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserSummaryResponse(user.Summary()))
	}

	WriteData(w, http.StatusOK, response, map[string]string{
		"self": "/v1/users",
	})
}

func toUserSummaryResponse(summary *model.UserSummary) UserSummaryResponse {
	if summary == nil {
		return UserSummaryResponse{}
	}
	return UserSummaryResponse{
		ID:    summary.ID,
		Name:  summary.Name,
		Email: summary.Email,
	}
}
