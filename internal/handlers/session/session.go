package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"lumina-main/internal/session"
	myErr "lumina-main/internal/types/errors"
)

// SessionHandler выдает сессии анонимным клиентам
type SessionHandler struct {
	Logger      *zap.SugaredLogger
	SessionRepo session.SessionRepo
}

func NewSessionHandler(log *zap.SugaredLogger, sr session.SessionRepo) *SessionHandler {
	return &SessionHandler{
		Logger:      log,
		SessionRepo: sr,
	}
}

// Create - POST /session
// Вернувшийся клиент присылает свой clientId и получает доступ к своим
// корзине и спискам; новый клиент получает свежий clientId вместе с токеном
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ClientID string `json:"clientId"`
	}

	// Тело опционально
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && err != io.EOF {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	sess, err := h.SessionRepo.CreateSession(r.Context(), w, input.ClientID)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	h.Logger.Infof("session %s issued for client %s", sess.ID, sess.ClientID)
}
