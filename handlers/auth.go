package handlers

import (
	"net/http"

	"clocking/config"
	"clocking/middleware"
	"clocking/planner"
	"clocking/store"

	"go.uber.org/zap"
)

type AuthHandler struct {
	config *config.Config
	store  *store.Store
	logger *zap.Logger
}

func NewAuthHandler(cfg *config.Config, s *store.Store, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		config: cfg,
		store:  s,
		logger: logger,
	}
}

type loginRequest struct {
	Name string `json:"name"`
}

type loginResponse struct {
	Session store.Session `json:"session"`
	Token   string        `json:"token"`
}

// Login signs in by name only; there are no passwords.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	user, err := h.store.Login(r.Context(), req.Name)
	if err != nil {
		writeErr(w, err)
		return
	}

	token, err := middleware.GenerateToken(&user, h.config.JWTExpiration)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})

	sess, _ := h.store.Session()
	writeJSON(w, http.StatusOK, loginResponse{Session: sess, Token: token})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout(r.Context())
	middleware.ClearTokenCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, middleware.GetUserFromContext(r.Context()))
}

func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.store.Session()
	if !ok {
		writeErr(w, store.ErrNotSignedIn)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// sessionUpdate changes the view state. Navigate moves the planner window
// by that many steps; zero returns to today.
type sessionUpdate struct {
	Tab      *store.Tab `json:"tab,omitempty"`
	Mode     *string    `json:"mode,omitempty"`
	Start    *string    `json:"start,omitempty"`
	Navigate *int       `json:"navigate,omitempty"`
}

func (h *AuthHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, err)
		return
	}

	sess, ok := h.store.Session()
	if !ok {
		writeErr(w, store.ErrNotSignedIn)
		return
	}

	var err error
	if req.Tab != nil {
		if sess, err = h.store.SetTab(*req.Tab); err != nil {
			writeErr(w, err)
			return
		}
	}

	if req.Mode != nil || req.Start != nil {
		window := sess.Window
		if req.Mode != nil {
			mode, err := planner.ParseViewMode(*req.Mode)
			if err != nil {
				writeErr(w, err)
				return
			}
			window = window.WithMode(mode)
		}
		if req.Start != nil {
			start, err := parseDate(*req.Start)
			if err != nil {
				writeErr(w, err)
				return
			}
			window.Start = start
		}
		if sess, err = h.store.SetWindow(window); err != nil {
			writeErr(w, err)
			return
		}
	}

	if req.Navigate != nil {
		if sess, err = h.store.NavigateWindow(*req.Navigate); err != nil {
			writeErr(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, sess)
}
