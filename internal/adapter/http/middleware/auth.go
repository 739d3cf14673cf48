package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"auditqc/internal/appctx"
	"auditqc/pkg"
)

const defaultSessionCookie = "qc_session"

var errMissingCredential = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing session credential", http.StatusUnauthorized)

// SessionCookieName resolves the cookie the credential travels in.
func SessionCookieName() string {
	if name := strings.TrimSpace(os.Getenv("QC_SESSION_COOKIE")); name != "" {
		return name
	}
	return defaultSessionCookie
}

// Auth extracts the bearer credential from the session cookie and stores it
// in the request context. Requests without one are rejected here so no
// handler ever talks to the backend anonymously.
func Auth() gin.HandlerFunc {
	cookieName := SessionCookieName()
	return func(c *gin.Context) {
		credential, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(credential) == "" {
			c.AbortWithStatusJSON(errMissingCredential.HTTPStatus, errMissingCredential.ToHTTPError())
			return
		}

		ctx := appctx.Set(c.Request.Context(), appctx.ContextKeyCredential, strings.TrimSpace(credential))
		ctx = appctx.Set(ctx, appctx.ContextKeyCorrelationId, uuid.NewString())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
