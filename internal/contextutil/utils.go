package contextutil

import (
	"context"

	"lumina-main/internal/middleware"
)

// GetClientIDFromContext извлекает clientID из контекста
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.ClientID, true
}
