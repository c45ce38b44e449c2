package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"docsuite-ads/internal/core/port"
)

type operatorKey struct{}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleLogin exchanges operator credentials for a bearer token. When
// authentication is not configured the endpoint answers 404.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.auth == nil {
		http.NotFound(w, r)
		return
	}
	var req loginReq
	if !h.decode(w, r, &req, true) {
		return
	}
	token, expires, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, port.ErrUnauthorized) {
			h.logger.Warn("failed operator login", slog.String("user", req.Username), slog.String("remote", r.RemoteAddr))
		}
		h.writeError(w, r, "login", err)
		return
	}
	h.writeJSON(w, http.StatusOK, loginResp{Token: token, ExpiresAt: expires})
}

// requireOperator accepts requests carrying a valid bearer token. Without
// an Authenticator every request passes.
func (h *Handler) requireOperator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.auth == nil {
			next.ServeHTTP(w, r)
			return
		}
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			h.writeError(w, r, "auth", port.ErrUnauthorized)
			return
		}
		claims, err := h.auth.Verify(token)
		if err != nil {
			h.writeError(w, r, "auth", port.ErrUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), operatorKey{}, claims.Operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// operator returns the operator name attached by requireOperator.
func operator(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(operatorKey{}).(string)
	return op, ok
}

// audit logs a completed admin change together with the operator that made
// it. Without authentication the operator is logged as "anonymous".
func (h *Handler) audit(r *http.Request, action string, attrs ...slog.Attr) {
	op, ok := operator(r.Context())
	if !ok {
		op = "anonymous"
	}
	attrs = append(attrs,
		slog.String("operator", op),
		slog.String("action", action),
		slog.String("request_id", middleware.GetReqID(r.Context())))
	h.logger.LogAttrs(r.Context(), slog.LevelInfo, "admin change", attrs...)
}
