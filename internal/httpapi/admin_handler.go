package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/pr-poehali-dev/custom-bracelet-shop/internal/session"
)

type AdminHandler struct {
	sessions *session.Manager
	log      *slog.Logger
}

func NewAdminHandler(sessions *session.Manager, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		log:      log,
	}
}

type LogoClickResponse struct {
	LogoClicks int     `json:"logo_clicks"`
	AdminMode  bool    `json:"admin_mode"`
	Notice     *Notice `json:"notice,omitempty"`
}

// POST /api/v1/logo/clicks
// The hidden entrance: the 7th click on the logo flips the session
// into admin mode. Not authentication, just a UI gate.
func (h *AdminHandler) LogoClick(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	clicks, becameAdmin := h.sessions.Click(sessionID)

	resp := &LogoClickResponse{
		LogoClicks: clicks,
		AdminMode:  h.sessions.IsAdmin(sessionID),
	}
	if becameAdmin {
		h.log.Info("admin mode activated", "session_id", sessionID)
		resp.Notice = &Notice{
			Title:       "Режим администратора активирован",
			Description: "Добро пожаловать в админ-панель",
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// POST /api/v1/admin/exit
// Leaves admin mode and resets the click counter.
func (h *AdminHandler) Exit(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	h.sessions.ExitAdmin(sessionID)
	h.log.Info("admin mode exited", "session_id", sessionID)

	respondJSON(w, http.StatusOK, &LogoClickResponse{
		LogoClicks: 0,
		AdminMode:  false,
	})
}
