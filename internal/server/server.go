package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/internal/masterdata"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/internal/session"
	"github.com/iwvelando/marui-portal/internal/store"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

// Services are the stores the API reads from and writes to.
type Services struct {
	Ledger   *budget.Ledger
	Book     *sales.Book
	Registry *masterdata.Registry
}

// Options tune the handler.
type Options struct {
	MaxUploadSize int64
	Version       string
	// Session is used by requests that carry no role header.
	Session *session.Session
	Budget  budget.DashboardOptions
	Sales   sales.DashboardOptions
}

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
	session       *session.Session
	ledger        *budget.Ledger
	book          *sales.Book
	registry      *masterdata.Registry
	budgetOpts    budget.DashboardOptions
	salesOpts     sales.DashboardOptions
}

// NewHandler constructs the HTTP handler that serves the portal API.
func NewHandler(logger *zap.Logger, svc Services, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxUploadSize <= 0 {
		opts.MaxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if opts.Session == nil {
		opts.Session = session.Default()
	}
	if svc.Registry == nil {
		svc.Registry = masterdata.NewRegistry(logger)
	}
	if svc.Ledger == nil {
		svc.Ledger = budget.NewLedger(logger)
	}
	if svc.Book == nil {
		svc.Book = sales.NewBook(logger, svc.Registry)
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: opts.MaxUploadSize,
		version:       trimmedVersion,
		session:       opts.Session,
		ledger:        svc.Ledger,
		book:          svc.Book,
		registry:      svc.Registry,
		budgetOpts:    opts.Budget,
		salesOpts:     opts.Sales,
	}

	r := mux.NewRouter()
	r.Use(h.logRequests, h.withSession)

	api := r.PathPrefix("/api").Subrouter()

	// Session and navigation
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)
	api.HandleFunc("/session", h.handleSession).Methods(http.MethodGet)
	api.HandleFunc("/session/role", h.handleSwitchRole).Methods(http.MethodPost)
	api.HandleFunc("/access/resolve", h.handleResolve).Methods(http.MethodGet)
	api.HandleFunc("/menu", h.handleMenu).Methods(http.MethodGet)
	api.HandleFunc("/options", h.handleOptions).Methods(http.MethodGet)

	h.registerBudgetRoutes(api)
	h.registerSalesRoutes(api)
	h.registerMasterRoutes(api)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no such endpoint"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withSession attaches the acting session. A role header yields a session for
// that request only; without one the shared session applies.
func (h *handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := h.session
		if name := strings.TrimSpace(r.Header.Get(constants.RoleHeader)); name != "" {
			role, err := access.ParseRole(name)
			if err != nil {
				h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.withSession")
				return
			}
			s = session.New(role)
		}
		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), s)))
	})
}

func roleOf(r *http.Request) access.Role {
	return session.FromContext(r.Context()).Role()
}

// requirePage refuses requests from roles that may not open p.
func (h *handler) requirePage(p access.Page, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := roleOf(r)
		if !access.CanAccess(role, p) {
			h.forbid(w, role, fmt.Sprintf("%s cannot open %s", role, p))
			return
		}
		next(w, r)
	}
}

type sessionResponse struct {
	Role        access.Role       `json:"role"`
	DefaultPage access.Page       `json:"defaultPage"`
	CanInput    bool              `json:"canInput"`
	Division    string            `json:"division,omitempty"`
	Menu        []access.MenuItem `json:"menu"`
}

func newSessionResponse(role access.Role) sessionResponse {
	resp := sessionResponse{
		Role:        role,
		DefaultPage: access.DefaultPage(role),
		CanInput:    access.CanInput(role),
		Menu:        access.Menu(role),
	}
	if division, ok := access.ScopedDivision(role); ok {
		resp.Division = division
	}
	return resp
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleSession(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, newSessionResponse(roleOf(r)))
}

func (h *handler) handleSwitchRole(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode role: %v", err), "server.handleSwitchRole")
		return
	}
	if err := h.session.SwitchRoleByName(payload.Role); err != nil {
		h.fail(w, r, err, "server.handleSwitchRole")
		return
	}
	role := h.session.Role()
	h.logger.Info("role switched",
		zap.String("op", "server.handleSwitchRole"),
		zap.String("role", role.String()),
	)
	h.writeJSON(w, http.StatusOK, newSessionResponse(role))
}

func (h *handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	requested, err := access.ParsePage(r.URL.Query().Get("page"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleResolve")
		return
	}
	page, redirected := access.Resolve(roleOf(r), requested)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"page":       page,
		"title":      page.String(),
		"redirected": redirected,
	})
}

func (h *handler) handleMenu(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, access.Menu(roleOf(r)))
}

func (h *handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	role := roleOf(r)
	months := make([]string, 0, len(datetime.Months))
	for _, m := range datetime.Months {
		months = append(months, m.String())
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"roles":              access.AllRoles,
		"months":             months,
		"years":              h.ledger.Years(),
		"divisions":          access.VisibleDivisions(role, h.registry.ActiveDivisionNames()),
		"canChooseDivision":  access.CanChooseDivision(role),
		"channels":           sales.Channels,
		"dataSources":        sales.DataSources,
		"adsPlatforms":       sales.AdsPlatforms,
		"campaignObjectives": sales.CampaignObjectives,
		"campaignTypes":      sales.CampaignTypes,
		"budgetTypes":        sales.BudgetTypes,
	})
}

// fail maps a domain error onto a status code and writes it.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		h.logger.Warn("request rejected",
			zap.String("op", op),
			zap.String("error", vErr.Error()),
		)
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  vErr.Message,
			"fields": vErr.Fields,
		})
	case errors.Is(err, access.ErrForbidden):
		h.forbid(w, roleOf(r), err.Error())
	case errors.Is(err, store.ErrNotFound):
		h.respondErrorWithOp(w, http.StatusNotFound, err.Error(), op)
	case errors.Is(err, sales.ErrAlreadySubmitted):
		h.respondErrorWithOp(w, http.StatusConflict, err.Error(), op)
	case errors.Is(err, access.ErrUnknownRole), errors.Is(err, datetime.ErrUnknownMonth):
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
	default:
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
	}
}

// forbid writes a 403 that tells the client where the role lands instead.
func (h *handler) forbid(w http.ResponseWriter, role access.Role, msg string) {
	landing := access.DefaultPage(role)
	h.logger.Warn("access refused",
		zap.String("op", "server.forbid"),
		zap.String("role", role.String()),
		zap.String("error", msg),
	)
	h.writeJSON(w, http.StatusForbidden, map[string]interface{}{
		"error":         msg,
		"redirect":      landing,
		"redirectTitle": landing.String(),
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("portal request failed",
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

// decode reads a JSON request body no larger than the upload limit.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, v interface{}, op string) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxUploadSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" || raw == constants.FilterAll {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.Failf("invalid %s %q", name, raw)
	}
	return n, nil
}
