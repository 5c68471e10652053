package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/penalty-estimator/internal/config"
	"github.com/iwvelando/penalty-estimator/internal/estimate"
	"github.com/iwvelando/penalty-estimator/internal/form"
	"github.com/iwvelando/penalty-estimator/internal/penalty"
	"github.com/iwvelando/penalty-estimator/internal/tax"
	"github.com/iwvelando/penalty-estimator/internal/traffic"
	"github.com/iwvelando/penalty-estimator/pkg/format"
	"github.com/iwvelando/penalty-estimator/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const requestTimeout = 15 * time.Second

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	rules       config.RulesConfig
	formatter   format.Formatter
}

// NewHandler constructs the HTTP handler that serves the estimate API.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.BodySizeBytes(),
		version:     trimmedVersion,
		rules:       cfg.Rules,
		formatter:   cfg.Formatter(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		h.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/rules", h.handleRules)
		r.Post("/traffic/estimate", h.handleTrafficEstimate)
		r.Post("/tax/estimate", h.handleTaxEstimate)
		r.Post("/estimate", h.handleBatchEstimate)
	})

	return r
}

type stepResponse struct {
	Name    string `json:"name"`
	Factor  string `json:"factor"`
	Applied bool   `json:"applied"`
}

type estimateResponse struct {
	Computable bool           `json:"computable"`
	Amount     *int64         `json:"amount"`
	Formatted  string         `json:"formatted,omitempty"`
	Base       string         `json:"base,omitempty"`
	Steps      []stepResponse `json:"steps,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Disclaimer string         `json:"disclaimer,omitempty"`
}

type batchEstimate struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	estimateResponse
}

type batchResponse struct {
	Estimates []batchEstimate `json:"estimates"`
	Warnings  []string        `json:"warnings,omitempty"`
	CSV       string          `json:"csv"`
	Duration  string          `json:"duration"`
}

type taxRequest struct {
	PenaltyType string   `json:"penaltyType"`
	TaxAmount   flexText `json:"taxAmount"`
	Months      flexText `json:"months"`
	EntityType  string   `json:"entityType"`
}

func (t taxRequest) form() form.TaxForm {
	return form.TaxForm{
		PenaltyType: t.PenaltyType,
		TaxAmount:   string(t.TaxAmount),
		Months:      string(t.Months),
		EntityType:  t.EntityType,
	}
}

// flexText accepts a JSON string, number or null and keeps the text form so
// it goes through the same parsing as typed input.
type flexText string

func (f *flexText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected a string or number, got %s", trimmed)
	}
	*f = flexText(n.String())
	return nil
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleTrafficEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTrafficEstimate"

	f := form.NewTrafficForm()
	if !h.decodeJSON(w, r, &f, op) {
		return
	}
	f.FillDefaults()

	result, err := f.Evaluate(h.rules.TrafficOptions())
	h.writeJSON(w, http.StatusOK, h.buildEstimate(result, err, traffic.Disclaimer))
}

func (h *handler) handleTaxEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleTaxEstimate"

	var req taxRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	f := req.form()
	f.FillDefaults()
	result, err := f.Evaluate()
	h.writeJSON(w, http.StatusOK, h.buildEstimate(result, err, tax.Disclaimer))
}

func (h *handler) handleBatchEstimate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleBatchEstimate"
	start := time.Now()

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	if err := checkYAML(body); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	conf, err := config.LoadConfigurationFromReader(bytes.NewReader(body))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}
	if h.rules.ZeroBaseWithoutSubSelector {
		conf.Rules.ZeroBaseWithoutSubSelector = true
	}

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		h.logger.Warn(warning, zap.String("op", op))
	}

	results := estimate.GetEstimates(h.logger, *conf)
	response := batchResponse{
		Estimates: make([]batchEstimate, 0, len(results)),
		Warnings:  warnings,
		CSV:       output.CsvString(results),
	}
	for _, e := range results {
		item := batchEstimate{Name: e.Name, Domain: string(e.Domain)}
		disclaimer := traffic.Disclaimer
		if e.Domain == estimate.DomainTax {
			disclaimer = tax.Disclaimer
		}
		if e.Result != nil {
			item.estimateResponse = h.buildEstimate(*e.Result, nil, disclaimer)
		} else {
			item.estimateResponse = estimateResponse{Reason: e.Reason, Disclaimer: disclaimer}
		}
		response.Estimates = append(response.Estimates, item)
	}

	elapsed := time.Since(start)
	response.Duration = elapsed.String()

	h.logger.Info("batch estimate computed",
		zap.String("op", op),
		zap.Int("estimates", len(response.Estimates)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) buildEstimate(result penalty.Result, err error, disclaimer string) estimateResponse {
	if err != nil {
		return estimateResponse{Reason: err.Error(), Disclaimer: disclaimer}
	}

	amount := result.Amount
	resp := estimateResponse{
		Computable: true,
		Amount:     &amount,
		Formatted:  h.formatter.Currency(amount),
		Base:       result.Base.String(),
		Disclaimer: disclaimer,
	}
	for _, step := range result.Steps {
		resp.Steps = append(resp.Steps, stepResponse{
			Name:    step.Name,
			Factor:  step.Factor.String(),
			Applied: step.Applied,
		})
	}
	return resp
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondBodyError(w, err, op)
		return nil, false
	}
	return body, true
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	body, ok := h.readBody(w, r, op)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.respondErrorWithOp(w, http.StatusBadRequest, "request body is empty", op)
		return false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondBodyError(w http.ResponseWriter, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request body: %v", err), op)
}

func checkYAML(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty configuration")
	}

	var result map[string]interface{}
	return yaml.Unmarshal(trimmed, &result)
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Debug("request served",
			zap.String("op", "server.requestLogger"),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
