package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/logger"
	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
)

// UserService defines business operations for user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, rawID string) (model.User, error)
	CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error)
	UpdateUser(ctx context.Context, rawID string, params model.UpdateUserParams) (model.User, error)
	DeleteUser(ctx context.Context, rawID string) (model.User, error)
	DeleteAllUsers(ctx context.Context) (int64, error)
}

// User handles HTTP endpoints for users.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type userResponse struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

type deleteAllResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

func (h *User) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *User) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *User) CreateUser(w http.ResponseWriter, r *http.Request) {
	var params model.CreateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.logger.Info("User handler: malformed create body",
			"error", err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.userService.CreateUser(r.Context(), params)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		Message: "User created successfully",
		User:    user,
	})
}

func (h *User) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var params model.UpdateUserParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		h.logger.Info("User handler: malformed update body",
			"error", err.Error())
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), chi.URLParam(r, "id"), params)
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Message: "User updated successfully",
		User:    user,
	})
}

func (h *User) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		Message: "User deleted successfully",
		User:    user,
	})
}

func (h *User) DeleteAllUsers(w http.ResponseWriter, r *http.Request) {
	count, err := h.userService.DeleteAllUsers(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteAllResponse{
		Message:      "Users deleted successfully",
		DeletedCount: count,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
