package middleware

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"partshub/internal/api/response"
	apperror "partshub/internal/errors"
	"partshub/internal/pkg/cache"
	"partshub/internal/pkg/logger"
)

// RateLimiter limita requisições por IP em janelas fixas guardadas no cache.
// Se o cache falhar, a requisição passa (fail-open) e o erro é logado.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			switch {
			case errors.Is(err, cache.ErrCacheMiss):
				if setErr := client.Set(ctx, key, 1, window); setErr != nil {
					log.Error("Falha ao abrir janela de rate limit", setErr)
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			case err != nil:
				log.Error("Falha ao consultar rate limit", err)
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				response.Error(w, r, log, apperror.NewTooManyRequestsError(
					fmt.Sprintf("máximo de %d requisições por janela; tente de novo em %s.", limit, window)))
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Error("Falha ao incrementar rate limit", err)
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
