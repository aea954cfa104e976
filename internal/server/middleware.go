package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dondusang/internal/auth"
	"dondusang/internal/utils"
	"dondusang/pkg/types"

	"github.com/sirupsen/logrus"
)

// Context key types to avoid collisions
type contextKey string

const (
	contextKeyIdentity  contextKey = "identity"
	contextKeyRequestID contextKey = "request_id"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), contextKeyRequestID, utils.RequestID())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		requestID, _ := r.Context().Value(contextKeyRequestID).(string)

		s.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// StripTrailingSlash rewrites "/utilisateurs/" to "/utilisateurs" before
// routing. A rewrite rather than a redirect so POST bodies survive.
func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			r.URL.Path = strings.TrimSuffix(path, "/")
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin verifies the bearer token and admits only the configured
// administrator account. Other accounts are rejected even when they carry
// the admin role.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			s.unauthorized(w)
			return
		}

		identity, err := s.tokens.Verify(raw)
		if err != nil {
			s.logger.WithError(err).Debug("rejected access token")
			s.unauthorized(w)
			return
		}

		user, err := s.users.User(r.Context(), identity.UserID)
		if err != nil {
			s.unauthorized(w)
			return
		}

		if user.ID != s.config.AdminUserID || user.Role != types.UserRoleAdmin {
			s.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyIdentity, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func (s *Service) identityFromContext(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(contextKeyIdentity).(*auth.Identity)
	return identity, ok
}
