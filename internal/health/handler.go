// Package health serves the liveness probe.
package health

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"residents/pkg/platform/httputil"
	"residents/pkg/requestcontext"
)

const (
	StatusOK = "ok"
	Message  = "Resident registry service is running"
)

// timestampLayout renders ISO-8601 UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Response is the liveness payload.
type Response struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Handler reports liveness. It reads no registry state and never fails.
type Handler struct {
	environment string
}

func New(environment string) *Handler {
	return &Handler{environment: environment}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.handleCheck)
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.check(requestcontext.Now(r.Context())))
}

func (h *Handler) check(now time.Time) Response {
	return Response{
		Status:      StatusOK,
		Message:     Message,
		Timestamp:   now.UTC().Format(timestampLayout),
		Environment: h.environment,
	}
}
