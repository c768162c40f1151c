package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"residents/internal/platform/metrics"
	"residents/internal/platform/middleware"
	"residents/internal/resident/models"
	dErrors "residents/pkg/domain-errors"
	"residents/pkg/platform/httputil"
)

// maxBodyBytes caps create request bodies.
const maxBodyBytes = 1 << 20

// Service defines the interface for registry operations.
type Service interface {
	Create(ctx context.Context, in models.NewResident) (models.Resident, error)
	List(ctx context.Context) ([]models.Resident, error)
	Delete(ctx context.Context, id int64) error
}

// Handler handles the /api/residents endpoints.
type Handler struct {
	logger    *slog.Logger
	residents Service
	metrics   *metrics.Metrics
}

// New creates a new resident Handler. metrics may be nil.
func New(residents Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:    logger,
		residents: residents,
		metrics:   metrics,
	}
}

// Register registers the resident routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/residents", h.handleList)
	r.Post("/api/residents", h.handleCreate)
	r.Delete("/api/residents/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	residents, err := h.residents.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list residents",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if residents == nil {
		residents = []models.Resident{}
	}
	httputil.WriteJSON(w, http.StatusOK, residents)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, err := decodeCreateRequest(w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid create resident body",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	in, err := req.Parse()
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) && h.metrics != nil {
			h.metrics.IncrementValidationFailure(ve.Reason.Field())
		}
		h.logger.WarnContext(ctx, "create resident rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeValidation, err.Error()))
		return
	}

	created, err := h.residents.Create(ctx, in)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create resident",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseResidentID(chi.URLParam(r, "id"))
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, models.MessageResidentNotFound))
		return
	}

	if err := h.residents.Delete(ctx, id); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logger.ErrorContext(ctx, "failed to delete resident",
				"request_id", middleware.GetRequestID(ctx),
				"resident_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeCreateRequest reads the JSON body. An empty body decodes as {} so
// field validation reports what is missing.
func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (*CreateResidentRequest, error) {
	var req CreateResidentRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return &req, nil
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "Request body too large")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "Request body must be valid JSON")
	}
}
