package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/auth"
	rl "github.com/Aayush-devops/dark-web-stores-Dashboard-analytics/internal/http/rate_limiter"
)

type contextKey string

const (
	userKey = contextKey("username")
	roleKey = contextKey("role")
)

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		_, claims, err := auth.TokenClaims(authorization)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		if username, ok := claims["username"].(string); ok {
			ctx = context.WithValue(ctx, userKey, username)
		}
		if role, ok := claims["role"].(string); ok {
			ctx = context.WithValue(ctx, roleKey, role)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(userKey).(string); ok {
		return val
	}
	return ""
}

func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
