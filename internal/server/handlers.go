package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/pmroz/zusgo/internal/calculation"
	"github.com/pmroz/zusgo/internal/domain"
	"github.com/pmroz/zusgo/internal/sanity"
	"github.com/pmroz/zusgo/internal/store"
	"github.com/pmroz/zusgo/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler holds the dependencies of the HTTP API. It is constructed
// explicitly and injected into the router; there is no lazily
// initialized global state.
type Handler struct {
	logger       *zap.Logger
	defaultTable *domain.IndexTable
	records      *store.Store
	now          func() time.Time

	// auditYears truncates audit trails in responses; 0 keeps all.
	auditYears int
}

// NewHandler wires the handler. The logger and record store are
// required; construction fails instead of deferring the error to the
// first request.
func NewHandler(logger *zap.Logger, defaultTable *domain.IndexTable, records *store.Store, auditYears int) (*Handler, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if records == nil {
		return nil, fmt.Errorf("record store is required")
	}
	return &Handler{
		logger:       logger,
		defaultTable: defaultTable,
		records:      records,
		now:          time.Now,
		auditYears:   auditYears,
	}, nil
}

type validateRequest struct {
	Profile *domain.WorkerProfile `json:"profile"`
}

type indexTableDTO struct {
	Valorization    map[int]decimal.Decimal    `json:"valorization"`
	Profitability   map[int]decimal.Decimal    `json:"profitability"`
	AveragePensions map[string]decimal.Decimal `json:"averagePensions"`
}

type calculateRequest struct {
	Profile    *domain.WorkerProfile `json:"profile"`
	IndexTable *indexTableDTO        `json:"indexTable,omitempty"`
}

type calculateResponse struct {
	ID      string                   `json:"id,omitempty"`
	Result  *domain.ProjectionResult `json:"result"`
	Verdict sanity.Verdict           `json:"verdict"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}

// ValidateProfile runs the validator alone and returns the itemized
// errors and warnings.
func (h *Handler) ValidateProfile(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Profile == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "profile field is required"})
		return
	}
	result := validation.Validate(req.Profile, h.now().Year())
	writeJSON(w, http.StatusOK, result)
}

// Calculate runs the full pipeline: validate, project, derive, check
// plausibility, persist the record.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Profile == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "profile field is required"})
		return
	}

	table := h.defaultTable
	if req.IndexTable != nil {
		table = buildTable(req.IndexTable)
	}

	engine := calculation.NewEngine(table)
	result, err := engine.Project(req.Profile, h.now().Year())
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "profile validation failed",
				Details: verr.Result,
			})
			return
		}
		h.logger.Error("projection failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "projection failed"})
		return
	}

	verdict := sanity.Check(result, table)

	id := h.persist(r, req.Profile, result, verdict)

	// Responses may carry a truncated trail; the stored record always
	// keeps it in full.
	response := calculateResponse{ID: id, Result: result, Verdict: verdict}
	if h.auditYears > 0 {
		truncated := *result
		truncated.AuditTrail = result.AuditTrail.Truncate(h.auditYears)
		response.Result = &truncated
	}

	writeJSON(w, http.StatusOK, response)
}

// persist saves the calculation; persistence failures are logged, not
// surfaced, since the projection itself succeeded.
func (h *Handler) persist(r *http.Request, profile *domain.WorkerProfile, result *domain.ProjectionResult, verdict sanity.Verdict) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		h.logger.Error("failed to marshal profile for storage", zap.Error(err))
		return ""
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("failed to marshal result for storage", zap.Error(err))
		return ""
	}
	verdictJSON, err := json.Marshal(verdict)
	if err != nil {
		h.logger.Error("failed to marshal verdict for storage", zap.Error(err))
		return ""
	}

	rec, err := h.records.Save(r.Context(), profileJSON, resultJSON, verdictJSON)
	if err != nil {
		h.logger.Error("failed to persist calculation record", zap.Error(err))
		return ""
	}
	return rec.ID
}

type recordDTO struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Profile   json.RawMessage `json:"profile"`
	Result    json.RawMessage `json:"result"`
	Verdict   json.RawMessage `json:"verdict"`
}

// ListCalculations returns the stored history, newest first.
func (h *Handler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	records, err := h.records.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list calculation records", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list calculations"})
		return
	}

	dtos := make([]recordDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, toRecordDTO(rec))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"calculations": dtos,
		"limit":        limit,
		"offset":       offset,
	})
}

// GetCalculation returns a single stored calculation by id.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := h.records.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "calculation not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load calculation record", zap.Error(err), zap.String("id", id))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load calculation"})
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTO(*rec))
}

func toRecordDTO(rec store.Record) recordDTO {
	return recordDTO{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		Profile:   json.RawMessage(rec.Profile),
		Result:    json.RawMessage(rec.Result),
		Verdict:   json.RawMessage(rec.Verdict),
	}
}

func buildTable(dto *indexTableDTO) *domain.IndexTable {
	table := domain.NewIndexTable(dto.Valorization, dto.Profitability)
	if len(dto.AveragePensions) > 0 {
		averages := make(map[domain.Sex]decimal.Decimal, len(dto.AveragePensions))
		for raw, v := range dto.AveragePensions {
			if sex, ok := domain.ParseSex(raw); ok {
				averages[sex] = v
			}
		}
		table = table.WithAveragePensions(averages)
	}
	return table
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
