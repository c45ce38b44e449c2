package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docsuite-ads/internal/adapter/auth"
	"docsuite-ads/internal/core/domain"
	"docsuite-ads/internal/core/port"
)

// Renderer turns a serving decision into an HTML fragment.
type Renderer interface {
	Render(w io.Writer, resp *port.AdResponse) error
}

// Authenticator issues and checks operator tokens.
type Authenticator interface {
	Login(user, password string) (string, time.Time, error)
	Verify(token string) (*auth.OperatorClaims, error)
}

// Deps are the collaborators of the HTTP adapter. Auth may be nil, in
// which case the admin API is served without authentication.
type Deps struct {
	Ads            port.AdUseCase
	Admin          port.AdminUseCase
	Renderer       Renderer
	Auth           Authenticator
	Logger         *slog.Logger
	AllowedOrigins []string
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// Public serving routes and the admin API are registered on one chi.Router.
type Handler struct {
	ads       port.AdUseCase
	admin     port.AdminUseCase
	renderer  Renderer
	auth      Authenticator
	logger    *slog.Logger
	validator *validator.Validate
	now       func() time.Time
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		ads:       d.Ads,
		admin:     d.Admin,
		renderer:  d.Renderer,
		auth:      d.Auth,
		logger:    d.Logger,
		validator: validator.New(),
		now:       time.Now,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsHandler(d.AllowedOrigins))
	r.Use(metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ad/{placement}", h.handleAdFragment)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ad/{placement}", h.handleAdRequest)
		r.Get("/ad/click/{id}", h.handleAdClick)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.handleLogin)

			r.Group(func(r chi.Router) {
				r.Use(h.requireOperator)

				r.Get("/advertisers", h.handleListAdvertisers)
				r.Post("/advertisers", h.handleSaveAdvertisers)
				r.Get("/advertisers/public", h.handlePublicAdvertisers)
				r.Delete("/advertisers/{id}", h.handleDeleteAdvertiser)

				r.Get("/campaigns", h.handleListCampaigns)
				r.Post("/campaigns", h.handleSaveCampaigns)
				r.Post("/campaigns/wizard", h.handleCampaignWizard)
				r.Get("/campaigns/schedule", h.handleSchedule)

				r.Get("/settings", h.handleGetSettings)
				r.Post("/settings", h.handleSaveSettings)

				r.Get("/images", h.handleImages)
				r.Get("/stats/overview", h.handleStatsOverview)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type errorResp struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Unexpected errors are
// logged and hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrUnknownPlacement), domain.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrAdvertiserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrAdvertiserInUse):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", middleware.GetReqID(r.Context())))
		h.writeJSON(w, status, errorResp{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResp{Error: err.Error()})
}

// decode reads a JSON body into v and runs struct validation when v is a
// struct pointer. It writes the 400 response itself and reports false on
// failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any, validate bool) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResp{Error: "invalid JSON"})
		return false
	}
	if !validate {
		return true
	}
	if err := h.validator.Struct(v); err != nil {
		var details []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				details = append(details, validationMessage(fe))
			}
		}
		h.writeJSON(w, http.StatusBadRequest, errorResp{Error: "validation failed", Details: details})
		return false
	}
	return true
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email"
	case "url":
		return fe.Field() + " must be a valid URL"
	case "datetime":
		return fe.Field() + " must be a YYYY-MM-DD date"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
