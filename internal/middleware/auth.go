package middleware

import (
	"net/http"
	"strings"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/auth"
	"expense-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenVerifier checks a session token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Auth requires "Authorization: Bearer <token>". A missing token is 401; a
// token that fails verification is 403.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			util.Error(c, http.StatusUnauthorized, apperr.Message(apperr.ErrUnauthenticated))
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil {
			util.Error(c, apperr.HTTPStatus(err), apperr.Message(err))
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CurrentIdentity returns the identity stored by Auth.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

// UserID is the verified user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	identity, _ := CurrentIdentity(c)
	return identity.ID
}
