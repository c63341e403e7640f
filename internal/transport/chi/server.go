// Package chi exposes the catalog search service over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/medcloud/rxdex/internal/domain"
	"github.com/medcloud/rxdex/internal/domain/search/request"
	healthuc "github.com/medcloud/rxdex/internal/usecase/health"
	searchuc "github.com/medcloud/rxdex/internal/usecase/search"
)

// Error response codes.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeNotFound           = "not_found"
	codeServiceUnavailable = "service_unavailable"
	codeInternalError      = "internal_error"
)

// CatalogReader serves the lookup and facet endpoints.
type CatalogReader interface {
	GetByID(id string) (domain.Medication, error)
	DosageForms() ([]string, error)
}

// Server routes HTTP requests to the search, catalog, and health services.
type Server struct {
	search          *searchuc.Service
	catalog         CatalogReader
	health          *healthuc.Service
	logger          *zap.Logger
	defaultPageSize int
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, catalog CatalogReader, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{
		search:          search,
		catalog:         catalog,
		health:          health,
		logger:          logger,
		defaultPageSize: request.DefaultPageSize,
	}
}

// WithDefaultPageSize overrides the page size used when the caller omits it.
func (s *Server) WithDefaultPageSize(size int) *Server {
	if size > 0 {
		s.defaultPageSize = size
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/v1/medications/search", s.handleSearch)
	r.Get("/v1/medications/{id}", s.handleGetMedication)
	r.Get("/v1/dosage-forms", s.handleDosageForms)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// searchResponse is the wire shape of one result page.
type searchResponse struct {
	Results  []medicationResult `json:"results"`
	Total    int                `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// medicationResult is a catalog record plus its relevance score.
type medicationResult struct {
	domain.Medication
	Score float64 `json:"score"`
}

type dosageFormsResponse struct {
	DosageForms []string `json:"dosage_forms"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleSearch handles GET /v1/medications/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "page must be an integer")
		return
	}
	pageSize, err := intParam(q.Get("page_size"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "page_size must be an integer")
		return
	}
	if pageSize == nil {
		pageSize = &s.defaultPageSize
	}

	req, err := request.New(q.Get("q"), page, pageSize, q.Get("dosage_form"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	pageResult, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]medicationResult, len(pageResult.Results))
	for i := range pageResult.Results {
		res := &pageResult.Results[i]
		results[i] = medicationResult{Medication: res.Medication(), Score: res.Score()}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Results:  results,
		Total:    pageResult.Total,
		Page:     pageResult.Page,
		PageSize: pageResult.PageSize,
	})
}

// handleGetMedication handles GET /v1/medications/{id}.
func (s *Server) handleGetMedication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "medication id is required")
		return
	}

	med, err := s.catalog.GetByID(id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, med)
}

// handleDosageForms handles GET /v1/dosage-forms.
func (s *Server) handleDosageForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.catalog.DosageForms()
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dosageFormsResponse{DosageForms: forms})
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]string{
		"status": string(report.Status),
		"detail": report.Detail,
	})
}

// handleDomainError maps sentinel errors to HTTP status codes. Unmatched
// errors are logged and reported generically.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, codeServiceUnavailable, "catalog unavailable")
	default:
		s.logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// intParam parses an optional integer query parameter; nil means absent.
func intParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
