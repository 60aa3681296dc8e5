package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/pkg/jwthelper"
)

const (
	// ContextKeyGuardianID is where VerifyJWT stores the authenticated
	// guardian's id.
	ContextKeyGuardianID = "guardian_id"
	// ContextKeyRole is where VerifyJWT stores the authenticated role.
	ContextKeyRole = "role"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// guardian id and role in the gin context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(ctx, errors.New("missing bearer token"))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			abortUnauthorized(ctx, err)
			return
		}

		ctx.Set(ContextKeyGuardianID, claims.GuardianID)
		ctx.Set(ContextKeyRole, claims.Role)
		ctx.Next()
	}
}

// RequireAdmin guards the administrator-only routes. It must run after
// VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role, _ := ctx.Get(ContextKeyRole)
		if role != domain.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "administrator access required",
			})
			return
		}

		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "unauthorized: " + err.Error(),
	})
}
