package api

import (
	"encoding/json"
	"net/http"

	"smartparking/internal/auth"
	apperrors "smartparking/internal/errors"
	"smartparking/internal/service"
)

type AuthHandler struct {
	Service service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	session, token, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		http.Error(w, err.Error(), apperrors.StatusCode(err))
		return
	}
	json.NewEncoder(w).Encode(LoginResponse{
		Token:     token,
		Username:  session.Username,
		Email:     session.Email,
		LoginTime: session.LoginTime,
	})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		err := apperrors.ErrPasswordMismatch
		http.Error(w, err.Error(), apperrors.StatusCode(err))
		return
	}
	if err := h.Service.Register(r.Context(), req.Username, req.Email, req.Password); err != nil {
		http.Error(w, err.Error(), apperrors.StatusCode(err))
		return
	}
	json.NewEncoder(w).Encode(MessageResponse{Message: "Account created successfully!"})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.Service.Logout(session.ID); err != nil {
		http.Error(w, "Could not log out", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(MessageResponse{Message: "Logged out"})
}
