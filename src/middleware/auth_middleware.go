package middleware

import (
	"context"
	"net/http"
	"strings"

	"goaltrack-server/src/util"
)

// JWTAuth guards every domain route. A missing Authorization header is
// 401; a token that fails signature or expiry checks is 403.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				util.Message(w, http.StatusUnauthorized, "Token required")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims, err := util.ParseToken(secret, tokenString)
			if err != nil {
				util.Message(w, http.StatusForbidden, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
