package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kny8493/2025-todolist/internal/sessions"
)

const (
	sessionCtxKey   = "session"
	sessionIDCookie = "session_id"
)

// HandleSessionMiddleware resolves the caller's session from the
// session cookie, creating a fresh one (and setting the cookie) when
// the cookie is missing or names an expired session. The session is
// stashed on the gin context for the task handlers.
func (h *handlerImpl) HandleSessionMiddleware(c *gin.Context) {
	var session *sessions.Session

	sessionID, err := c.Cookie(sessionIDCookie)
	if err == nil {
		session = h.sessions.Get(sessionID)
	}

	if session == nil {
		session = h.sessions.Create()
		c.SetCookie(sessionIDCookie, session.ID, 0, "/", "", false, true)
		h.logger.Debug().
			Str("session_id", session.ID).
			Msg("started new session")
	}

	c.Set(sessionCtxKey, session)
	c.Next()
}

func (h *handlerImpl) sessionFromContext(c *gin.Context) (*sessions.Session, bool) {
	sessionValue, exists := c.Get(sessionCtxKey)
	if !exists {
		h.logger.Error().Msg("no session found in context")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return nil, false
	}

	session, ok := sessionValue.(*sessions.Session)
	if !ok {
		h.logger.Error().Msg("unexpected session value in context")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return nil, false
	}
	return session, true
}
