// Package server exposes the calculators over a JSON HTTP API along
// with the learn articles, the currency rate table, and a minimal
// embedded index page.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/paisawise/paisawise/internal/catalog"
	"github.com/paisawise/paisawise/internal/config"
	"github.com/paisawise/paisawise/internal/dto"
	"github.com/paisawise/paisawise/internal/learn"
	"github.com/paisawise/paisawise/pkg/breakeven"
	"github.com/paisawise/paisawise/pkg/currency"
	"github.com/paisawise/paisawise/pkg/deposit"
	"github.com/paisawise/paisawise/pkg/hra"
	"github.com/paisawise/paisawise/pkg/interest"
	"github.com/paisawise/paisawise/pkg/loan"
	"github.com/paisawise/paisawise/pkg/networth"
	"github.com/paisawise/paisawise/pkg/ppf"
	"github.com/paisawise/paisawise/pkg/retirement"
	"github.com/paisawise/paisawise/pkg/sip"
	"github.com/paisawise/paisawise/pkg/swp"
	"github.com/paisawise/paisawise/pkg/tax"
	"github.com/paisawise/paisawise/pkg/validation"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	rates       *currency.Table
}

// NewHandler constructs the HTTP handler that serves the calculator API
// and the embedded index page. Middleware is layered on top via Chain.
func NewHandler(logger *zap.Logger, cfg *config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	rates, err := currency.NewTable(cfg.Currency.Rates)
	if err != nil {
		logger.Warn("ignoring configured currency rates",
			zap.String("op", "server.NewHandler"),
			zap.Error(err),
		)
		rates = currency.DefaultTable()
	}

	h := &handler{
		logger:      logger,
		maxBodySize: cfg.Server.BodySizeBytes(),
		version:     trimmedVersion,
		rates:       rates,
	}

	mux := http.NewServeMux()

	// Calculator catalog and execution
	mux.HandleFunc("/api/calculators", h.handleCalculators)
	mux.HandleFunc("/api/calc/", h.handleCalc)

	// Learn articles
	mux.HandleFunc("/api/learn", h.handleLearnIndex)
	mux.HandleFunc("/api/learn/", h.handleLearnArticle)

	// Currency rate table
	mux.HandleFunc("/api/rates", h.handleRates)

	// Service metadata
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	// Static index (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type calcResponse struct {
	Calculator string      `json:"calculator"`
	Result     interface{} `json:"result"`
	Warnings   []string    `json:"warnings,omitempty"`
	Duration   string      `json:"duration"`
}

type validationResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields"`
}

type calculatorsResponse struct {
	Calculators []catalog.Definition `json:"calculators"`
	Count       int                  `json:"count"`
}

type learnIndexEntry struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type learnIndexResponse struct {
	Articles []learnIndexEntry `json:"articles"`
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (h *handler) handleCalculators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	defs := catalog.All()
	h.writeJSON(w, http.StatusOK, calculatorsResponse{Calculators: defs, Count: len(defs)})
}

func (h *handler) handleLearnIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	articles := learn.Index()
	entries := make([]learnIndexEntry, 0, len(articles))
	for _, article := range articles {
		entries = append(entries, learnIndexEntry{
			Slug:    article.Slug,
			Title:   article.Title,
			Summary: article.Summary,
		})
	}
	h.writeJSON(w, http.StatusOK, learnIndexResponse{Articles: entries})
}

func (h *handler) handleLearnArticle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/learn/")
	article, err := learn.Get(slug)
	if err != nil {
		if errors.Is(err, learn.ErrNotFound) {
			h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), "server.handleLearnArticle")
			return
		}
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleLearnArticle")
		return
	}

	h.writeJSON(w, http.StatusOK, article)
}

func (h *handler) handleRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, ratesResponse{Base: "INR", Rates: h.rates.Rates()})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// handleCalc routes POST /api/calc/{id} to the calculator named by id.
func (h *handler) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/calc/")
	if _, err := catalog.Lookup(id); err != nil {
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), "server.handleCalc")
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	switch id {
	case "emi":
		h.calcEMI(w, r, start)
	case "sip":
		h.calcSIP(w, r, start)
	case "lumpsum":
		h.calcLumpsum(w, r, start)
	case "swp":
		h.calcSWP(w, r, start)
	case "fd":
		h.calcFD(w, r, start)
	case "rd":
		h.calcRD(w, r, start)
	case "ppf":
		h.calcPPF(w, r, start)
	case "income-tax":
		h.calcIncomeTax(w, r, start)
	case "hra":
		h.calcHRA(w, r, start)
	case "gratuity":
		h.calcGratuity(w, r, start)
	case "retirement":
		h.calcRetirement(w, r, start)
	case "fire":
		h.calcFIRE(w, r, start)
	case "networth":
		h.calcNetWorth(w, r, start)
	case "inflation":
		h.calcInflation(w, r, start)
	case "currency":
		h.calcCurrency(w, r, start)
	case "breakeven":
		h.calcBreakEven(w, r, start)
	case "compound-interest":
		h.calcCompoundInterest(w, r, start)
	case "simple-interest":
		h.calcSimpleInterest(w, r, start)
	case "cagr":
		h.calcCAGR(w, r, start)
	default:
		// Catalog entries and handlers are maintained together; reaching
		// this branch means a catalog id has no handler yet.
		h.respondErrorWithOp(w, http.StatusNotImplemented,
			fmt.Sprintf("calculator %q has no handler", id), "server.handleCalc")
	}
}

func (h *handler) calcEMI(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcEMI"

	var req dto.EMIRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := loan.NewScheduleBuilder(h.logger).Build(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "emi", result, req.Warnings(), start)
}

func (h *handler) calcSIP(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcSIP"

	var req dto.SIPRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := sip.Project(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "sip", result, req.Warnings(), start)
}

func (h *handler) calcLumpsum(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcLumpsum"

	var req dto.LumpsumRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := interest.Lumpsum(req.Amount, req.AnnualRate, req.Years)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "lumpsum", result, req.Warnings(), start)
}

func (h *handler) calcSWP(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcSWP"

	var req dto.SWPRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := swp.NewPlanner(h.logger).Plan(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "swp", result, req.Warnings(), start)
}

func (h *handler) calcFD(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcFD"

	var req dto.FDRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := deposit.FixedDeposit(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "fd", result, req.Warnings(), start)
}

func (h *handler) calcRD(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcRD"

	var req dto.RDRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := deposit.RecurringDeposit(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "rd", result, req.Warnings(), start)
}

func (h *handler) calcPPF(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcPPF"

	var req dto.PPFRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := ppf.Project(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "ppf", result, nil, start)
}

func (h *handler) calcIncomeTax(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcIncomeTax"

	var req dto.IncomeTaxRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	if req.Compare() {
		result, err := tax.CompareRegimes(req.GrossIncome, req.Deductions())
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		h.respondResult(w, op, "income-tax", result, nil, start)
		return
	}

	result, err := tax.Compute(tax.Regime(req.Regime), req.GrossIncome, req.Deductions())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "income-tax", result, nil, start)
}

func (h *handler) calcHRA(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcHRA"

	var req dto.HRARequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := hra.Exemption(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "hra", result, nil, start)
}

func (h *handler) calcGratuity(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcGratuity"

	var req dto.GratuityRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := tax.Gratuity(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "gratuity", result, nil, start)
}

func (h *handler) calcRetirement(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcRetirement"

	var req dto.RetirementRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := retirement.Plan(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "retirement", result, req.Warnings(), start)
}

func (h *handler) calcFIRE(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcFIRE"

	var req dto.FIRERequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := retirement.FIRE(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "fire", result, req.Warnings(), start)
}

func (h *handler) calcNetWorth(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcNetWorth"

	var req dto.NetWorthRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := networth.Compute(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "networth", result, nil, start)
}

func (h *handler) calcInflation(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcInflation"

	var req dto.InflationRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := interest.Inflation(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "inflation", result, nil, start)
}

func (h *handler) calcCurrency(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcCurrency"

	var req dto.CurrencyRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	var result *currency.Conversion
	var err error
	if req.Rate > 0 {
		result, err = currency.WithRate(req.Amount, req.From, req.To, req.Rate)
	} else {
		result, err = h.rates.Convert(req.Amount, req.From, req.To)
	}
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "currency", result, nil, start)
}

func (h *handler) calcBreakEven(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcBreakEven"

	var req dto.BreakEvenRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := breakeven.Compute(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "breakeven", result, nil, start)
}

func (h *handler) calcCompoundInterest(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcCompoundInterest"

	var req dto.CompoundInterestRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := interest.Compound(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "compound-interest", result, req.Warnings(), start)
}

func (h *handler) calcSimpleInterest(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcSimpleInterest"

	var req dto.SimpleInterestRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := interest.Simple(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "simple-interest", result, nil, start)
}

func (h *handler) calcCAGR(w http.ResponseWriter, r *http.Request, start time.Time) {
	const op = "server.calcCAGR"

	var req dto.CAGRRequest
	if !h.decodeRequest(w, r, op, &req) {
		return
	}

	result, err := interest.CAGR(req.Input())
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.respondResult(w, op, "cagr", result, nil, start)
}

// decodeRequest reads and validates a calculator request body. It writes
// the error response itself and reports whether the handler may proceed.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, op string, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}

	if err := validation.Struct(target); err != nil {
		if verr := validation.AsError(err); verr != nil {
			h.respondInvalid(w, op, verr)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return false
	}

	return true
}

func (h *handler) respondInvalid(w http.ResponseWriter, op string, verr *validation.Error) {
	if h.logger != nil {
		h.logger.Error("request validation failed",
			zap.String("op", op),
			zap.Int("status", http.StatusBadRequest),
			zap.String("error", verr.Error()),
		)
	}

	h.writeJSON(w, http.StatusBadRequest, validationResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	})
}

func (h *handler) respondResult(w http.ResponseWriter, op, id string, result interface{}, warnings []string, start time.Time) {
	elapsed := time.Since(start)

	if h.logger != nil {
		h.logger.Info("calculation computed",
			zap.String("op", op),
			zap.String("calculator", id),
			zap.Duration("duration", elapsed),
		)
	}

	h.writeJSON(w, http.StatusOK, calcResponse{
		Calculator: id,
		Result:     result,
		Warnings:   warnings,
		Duration:   elapsed.String(),
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
