package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/blogsite/config"
	"github.com/cppla/blogsite/utils"
)

const (
	// ContextUserIDKey is the key used to store the authenticated user ID in the gin context.
	ContextUserIDKey = "user_id"
	// ContextUsernameKey stores the username inside the gin context.
	ContextUsernameKey = "username"
	// ContextClaimsKey stores the parsed session claims.
	ContextClaimsKey = "session_claims"

	// LoginPath is where anonymous requests to protected pages are sent.
	LoginPath = "/accounts/login/"
)

// LoadSession resolves the requester from the session cookie or a bearer token.
// Anonymous, expired or revoked sessions leave the context empty; the request
// always continues.
func LoadSession(store utils.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := sessionToken(ctx)
		if tokenString == "" {
			ctx.Next()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			clearCookie(ctx)
			ctx.Next()
			return
		}
		if utils.IsTokenRevoked(ctx.Request.Context(), store, claims.ID) {
			clearCookie(ctx)
			ctx.Next()
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUsernameKey, claims.Username)
		ctx.Set(ContextClaimsKey, claims)
		ctx.Next()
	}
}

func sessionToken(ctx *gin.Context) string {
	if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	cookie, err := ctx.Cookie(config.Get().SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// RequireLogin sends anonymous requesters to the login page with a next parameter.
func RequireLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := CurrentUserID(ctx); ok {
			ctx.Next()
			return
		}
		status := http.StatusFound
		if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
			status = http.StatusSeeOther
		}
		ctx.Redirect(status, LoginPath+"?next="+url.QueryEscape(ctx.Request.URL.RequestURI()))
		ctx.Abort()
	}
}

// CurrentUserID returns the authenticated user id, if any.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// CurrentClaims returns the session claims of an authenticated request.
func CurrentClaims(ctx *gin.Context) (*utils.Claims, bool) {
	v, ok := ctx.Get(ContextClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

// StartSession issues a session token for the user and sets it as a cookie.
func StartSession(ctx *gin.Context, userID uint, username string) error {
	cfg := config.Get()
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	token, _, err := utils.GenerateToken(userID, username, ttl)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(cfg.SessionCookie, token, int(ttl.Seconds()), "/", "", cfg.SecureCookies, true)
	return nil
}

// EndSession revokes the current token and clears the cookie.
func EndSession(ctx *gin.Context, store utils.Store) {
	if claims, ok := CurrentClaims(ctx); ok && claims.ExpiresAt != nil {
		utils.RevokeToken(ctx.Request.Context(), store, claims.ID, claims.ExpiresAt.Time)
	}
	clearCookie(ctx)
}

func clearCookie(ctx *gin.Context) {
	cfg := config.Get()
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(cfg.SessionCookie, "", -1, "/", "", cfg.SecureCookies, true)
}
