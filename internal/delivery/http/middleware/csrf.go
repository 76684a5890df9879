package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"circles-of-care-site/internal/delivery/http/response"
	"circles-of-care-site/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName carries the token on script driven requests
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField carries the token on plain HTML form posts
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenKey is where the current token is stored in the gin context for templates
	CSRFTokenKey = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the Double-Submit Cookie pattern.
//
// Every response carries a csrf_token cookie. Mutating requests must echo it
// back, either in the X-CSRF-Token header or in a csrf_token form field (the
// contact page renders it as a hidden input).
//
// EXEMPTIONS:
//   - /v1/contact is a cookie-less JSON endpoint for API clients and is
//     protected by rate limiting instead
//   - /v1/health is read-only
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	csrfExemptPaths := map[string]bool{
		"/v1/contact": true,
		"/v1/health":  true,
	}

	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			// SameSite=Lax sends the cookie on top-level navigations only
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"", // Domain (empty = current domain)
				secureCookie,
				false, // HttpOnly = false so JS can read it
			)
			csrfCookie = newToken
		}
		c.Set(CSRFTokenKey, csrfCookie)

		if csrfExemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" {
			logCSRFRejected(c, "missing_token")
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			logCSRFRejected(c, "token_mismatch")
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func logCSRFRejected(c *gin.Context, reason string) {
	security.DefaultLogger().LogCSRFRejected(c.Request.Context(),
		c.ClientIP(), c.Request.UserAgent(), c.GetString(RequestIDKey), c.Request.URL.Path, reason)
}

// CSRFToken returns the token for the current request, for rendering into forms.
func CSRFToken(c *gin.Context) string {
	return c.GetString(CSRFTokenKey)
}
