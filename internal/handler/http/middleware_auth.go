package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-saas-starter/internal/logger"
	"github.com/MKhiriev/go-saas-starter/internal/service"
	"github.com/MKhiriev/go-saas-starter/internal/utils"
)

// apiKeyHeader carries the caller's API key on every protected request.
const apiKeyHeader = "X-API-Key"

// auth is an HTTP middleware that enforces API-key authentication.
//
// It reads the incoming "X-API-Key" header, resolves it to an account via
// [service.AuthService.ResolveAPIKey], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "X-API-Key" header is absent or empty ([ErrMissingAPIKey], message
//     "Missing API key").
//   - The key matches no account ([service.ErrInvalidAPIKey], message
//     "Invalid API key").
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		apiKey := r.Header.Get(apiKeyHeader)
		if apiKey == "" {
			log.Err(ErrMissingAPIKey).Send()
			http.Error(w, "Missing API key", http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveAPIKey(ctx, apiKey)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidAPIKey):
				log.Err(err).Msg("unknown API key")
				http.Error(w, "Invalid API key", http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during API key resolution")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without resolving the key again.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
