package handlers

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	"storefront/internal/models"
	"storefront/internal/repository"
)

// AuthHandler exchanges an externally verified OAuth identity for a cookie
// session. Verifying the identity itself is the gateway's job; this
// service only records who signed in.
type AuthHandler struct {
	users   repository.UserRepository
	session *scs.SessionManager
}

func NewAuthHandler(users repository.UserRepository, session *scs.SessionManager) *AuthHandler {
	return &AuthHandler{users: users, session: session}
}

type loginRequest struct {
	OpenID      string `json:"openId" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	LoginMethod string `json:"loginMethod"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	user := models.User{
		OpenID:      req.OpenID,
		Name:        req.Name,
		Email:       req.Email,
		LoginMethod: req.LoginMethod,
	}

	// Upsert must fail loudly: a silently skipped user row would orphan
	// every later cart and order write.
	if err := h.users.Upsert(r.Context(), &user); err != nil {
		respondRepoError(w, err)
		return
	}

	if err := h.session.RenewToken(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to renew session", nil)
		return
	}
	h.session.Put(r.Context(), sessionUserIDKey, user.ID)
	h.session.Put(r.Context(), sessionOpenIDKey, user.OpenID)
	h.session.Put(r.Context(), sessionRoleKey, user.Role)

	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Remove(r.Context(), sessionUserIDKey)
	h.session.Remove(r.Context(), sessionOpenIDKey)
	h.session.Remove(r.Context(), sessionRoleKey)
	if err := h.session.Destroy(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to destroy session", nil)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Me reports the signed-in user, or null for anonymous callers.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	openID := h.session.GetString(r.Context(), sessionOpenIDKey)
	if openID == "" {
		writeJSON(w, http.StatusOK, nil)
		return
	}

	user, err := h.users.GetByOpenID(r.Context(), openID)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
