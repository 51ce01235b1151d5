package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/budget"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/validation"
	"go.uber.org/zap"
)

func (h *handler) registerBudgetRoutes(api *mux.Router) {
	api.HandleFunc("/budgets", h.requirePage(access.PageBudgeting, h.handleListPlans)).Methods(http.MethodGet)
	api.HandleFunc("/budgets", h.requirePage(access.PageBudgeting, h.handleAddPlan)).Methods(http.MethodPost)
	api.HandleFunc("/budgets/filters", h.requirePage(access.PageBudgeting, h.handleBudgetFilters)).Methods(http.MethodGet)
	api.HandleFunc("/budgets/template", h.requirePage(access.PageUploadBudget, h.handleTemplate(budget.TemplateBudget))).Methods(http.MethodGet)
	api.HandleFunc("/budgets/upload", h.requirePage(access.PageUploadBudget, h.handleUpload(budget.UploadBudget))).Methods(http.MethodPost)
	api.HandleFunc("/budgets/{id}", h.requirePage(access.PageBudgeting, h.handleGetPlan)).Methods(http.MethodGet)
	api.HandleFunc("/budgets/{id}", h.requirePage(access.PageBudgeting, h.handleRemovePlan)).Methods(http.MethodDelete)

	api.HandleFunc("/actuals", h.requirePage(access.PageActualBudget, h.handleListActuals)).Methods(http.MethodGet)
	api.HandleFunc("/actuals", h.requirePage(access.PageActualBudget, h.handleRecordActual)).Methods(http.MethodPost)
	api.HandleFunc("/actuals/template", h.requirePage(access.PageActualBudget, h.handleTemplate(budget.TemplateActual))).Methods(http.MethodGet)
	api.HandleFunc("/actuals/upload", h.requirePage(access.PageActualBudget, h.handleUpload(budget.UploadActual))).Methods(http.MethodPost)
	api.HandleFunc("/actuals/{id}", h.requirePage(access.PageActualBudget, h.handleRemoveActual)).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard", h.requirePage(access.PageDashboard, h.handleOverview)).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/budget", h.requirePage(access.PageBudgetDashboard, h.handleBudgetDashboard)).Methods(http.MethodGet)
}

func budgetFilter(r *http.Request) (budget.Filter, error) {
	year, err := queryInt(r, "year")
	if err != nil {
		return budget.Filter{}, err
	}
	q := r.URL.Query()
	return budget.Filter{
		Year:     year,
		Division: strings.TrimSpace(q.Get("division")),
		Activity: strings.TrimSpace(q.Get("activity")),
	}, nil
}

func (h *handler) handleListPlans(w http.ResponseWriter, r *http.Request) {
	filter, err := budgetFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleListPlans")
		return
	}
	h.writeJSON(w, http.StatusOK, h.ledger.Plans(roleOf(r), filter))
}

func (h *handler) handleBudgetFilters(w http.ResponseWriter, r *http.Request) {
	filter, err := budgetFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleBudgetFilters")
		return
	}
	role := roleOf(r)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"years":             h.ledger.Years(),
		"divisions":         h.ledger.Divisions(role),
		"activities":        h.ledger.Activities(role, filter),
		"canChooseDivision": access.CanChooseDivision(role),
	})
}

func (h *handler) handleAddPlan(w http.ResponseWriter, r *http.Request) {
	var rec budget.BudgetRecord
	if !h.decode(w, r, &rec, "server.handleAddPlan") {
		return
	}
	stored, err := h.ledger.AddPlan(roleOf(r), rec)
	if err != nil {
		h.fail(w, r, err, "server.handleAddPlan")
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *handler) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.ledger.Plan(roleOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "server.handleGetPlan")
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *handler) handleRemovePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.RemovePlan(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleRemovePlan")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleListActuals(w http.ResponseWriter, r *http.Request) {
	filter, err := budgetFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleListActuals")
		return
	}
	h.writeJSON(w, http.StatusOK, h.ledger.Actuals(roleOf(r), filter))
}

func (h *handler) handleRecordActual(w http.ResponseWriter, r *http.Request) {
	var rec budget.ActualRecord
	if !h.decode(w, r, &rec, "server.handleRecordActual") {
		return
	}
	stored, replaced, err := h.ledger.RecordActual(roleOf(r), rec)
	if err != nil {
		h.fail(w, r, err, "server.handleRecordActual")
		return
	}
	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	h.writeJSON(w, status, map[string]interface{}{
		"actual":   stored,
		"replaced": replaced,
	})
}

func (h *handler) handleRemoveActual(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.RemoveActual(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleRemoveActual")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) budgetDashboardOptions(r *http.Request) (budget.DashboardOptions, error) {
	opts := h.budgetOpts
	year, err := queryInt(r, "year")
	if err != nil {
		return opts, err
	}
	if year > 0 {
		opts.Year = year
	}
	if division := strings.TrimSpace(r.URL.Query().Get("division")); division != "" {
		opts.Division = division
	}
	return opts, nil
}

func (h *handler) handleBudgetDashboard(w http.ResponseWriter, r *http.Request) {
	opts, err := h.budgetDashboardOptions(r)
	if err != nil {
		h.fail(w, r, err, "server.handleBudgetDashboard")
		return
	}
	h.writeJSON(w, http.StatusOK, h.ledger.Dashboard(roleOf(r), opts))
}

// handleOverview serves the admin landing page: both dashboards side by side.
func (h *handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	opts, err := h.budgetDashboardOptions(r)
	if err != nil {
		h.fail(w, r, err, "server.handleOverview")
		return
	}
	role := roleOf(r)
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"budget": h.ledger.Dashboard(role, opts),
		"sales":  h.book.Dashboard(role, h.salesOpts),
	})
}

func (h *handler) handleTemplate(kind budget.TemplateKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
		if format == "" {
			format = constants.TemplateFormatCSV
		}

		if err := validation.ValidateTemplateFormat(format); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), "server.handleTemplate")
			return
		}

		var buf bytes.Buffer
		if err := budget.WriteTemplate(&buf, kind, format); err != nil {
			h.fail(w, r, err, "server.handleTemplate")
			return
		}

		contentType := "text/csv"
		if format == constants.TemplateFormatXLSX {
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", budget.TemplateFileName(kind, format)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.logger.Error("failed to write template",
				zap.String("op", "server.handleTemplate"),
				zap.Error(err),
			)
		}
	}
}

// receiveFile reads the name and size of the multipart "file" field. A
// missing file yields an empty name; the content is never read.
func (h *handler) receiveFile(w http.ResponseWriter, r *http.Request, op string) (name string, size int64, ok bool) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return "", 0, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return "", 0, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", 0, true
	}
	if closeErr := file.Close(); closeErr != nil {
		h.logger.Warn("failed to close uploaded file",
			zap.String("op", op),
			zap.Error(closeErr),
		)
	}
	return header.Filename, header.Size, true
}

func (h *handler) handleUpload(kind budget.UploadKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, size, ok := h.receiveFile(w, r, "server.handleUpload")
		if !ok {
			return
		}
		up, err := h.ledger.AcknowledgeUpload(roleOf(r), kind, name, size)
		if err != nil {
			h.fail(w, r, err, "server.handleUpload")
			return
		}
		h.writeJSON(w, http.StatusAccepted, up)
	}
}
