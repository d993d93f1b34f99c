// Package flash provides one-shot, session-scoped notices shown on the next
// rendered page, backed by a signed cookie store.
package flash

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/mgately/fyyur-backend/pkg/logger"
)

const sessionName = "fyyur_session"

var store *sessions.CookieStore

// Initialize sets up the cookie store with the signing secret.
func Initialize(secret string) {
	store = sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
	}
}

func getStore() *sessions.CookieStore {
	if store == nil {
		Initialize("dev-session-secret")
	}
	return store
}

// Add queues a message for the next rendered page. Messages added during a
// request are also visible to Take within the same request.
func Add(c *gin.Context, message string) {
	session, err := getStore().Get(c.Request, sessionName)
	if err != nil {
		logger.Warn("Failed to decode session, starting a fresh one", map[string]interface{}{
			"error": err.Error(),
		})
	}
	session.AddFlash(message)
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.Error("Failed to save flash session", err)
	}
}

// Take returns all queued messages and clears them.
func Take(c *gin.Context) []string {
	session, err := getStore().Get(c.Request, sessionName)
	if err != nil {
		logger.Warn("Failed to decode session, starting a fresh one", map[string]interface{}{
			"error": err.Error(),
		})
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		logger.Error("Failed to save flash session", err)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
