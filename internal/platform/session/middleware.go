package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"repair_backend/internal/feature/auth/usecase"
)

const (
	// ContextUserID is the gin context key holding the authenticated user's ID.
	ContextUserID = "userID"

	// LandingPage is where unauthenticated requests are redirected.
	LandingPage = "/index.html"
)

// LoginRequired returns a gin middleware that resolves the session cookie
// and restricts access to authenticated users only. Anonymous requests are
// redirected to the public landing page rather than answered with a JSON
// error, matching the browser-form flow.
func LoginRequired(sessions usecase.SessionRepository, codec *CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Read the session cookie
		value, err := c.Cookie(CookieName)
		if err != nil {
			redirectToLanding(c)
			return
		}

		// 2. Verify the signature and extract the session ID
		sid, err := codec.Decode(value)
		if err != nil {
			redirectToLanding(c)
			return
		}

		// 3. Resolve the server-side session
		s, err := sessions.FindByID(c.Request.Context(), sid)
		if err != nil {
			if !errors.Is(err, usecase.ErrSessionNotFound) {
				slog.Error("session lookup failed", "error", err)
			}
			redirectToLanding(c)
			return
		}
		if !s.IsValid() {
			redirectToLanding(c)
			return
		}

		// 4. Expose the user identity to downstream handlers
		c.Set(ContextUserID, s.UserID)
		c.Next()
	}
}

// redirectToLanding sends an anonymous request back to the public landing
// resource and stops the handler chain.
func redirectToLanding(c *gin.Context) {
	c.Redirect(http.StatusFound, LandingPage)
	c.Abort()
}
