package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/iwvelando/marui-portal/internal/access"
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

func (h *handler) registerSalesRoutes(api *mux.Router) {
	s := api.PathPrefix("/sales").Subrouter()

	s.HandleFunc("/targets", h.requirePage(access.PageTargetSales, h.handleListTargets)).Methods(http.MethodGet)
	s.HandleFunc("/targets", h.requirePage(access.PageTargetSales, h.handleCreateTarget)).Methods(http.MethodPost)
	s.HandleFunc("/targets/{id}", h.requirePage(access.PageTargetSales, h.handleGetTarget)).Methods(http.MethodGet)
	s.HandleFunc("/targets/{id}", h.requirePage(access.PageTargetSales, h.handleDeleteTarget)).Methods(http.MethodDelete)

	s.HandleFunc("/actuals", h.requirePage(access.PageActualSales, h.handleListReports)).Methods(http.MethodGet)
	s.HandleFunc("/actuals", h.requirePage(access.PageActualSales, h.handleCreateActualSales)).Methods(http.MethodPost)
	s.HandleFunc("/actuals/{id}", h.requirePage(access.PageActualSales, h.handleGetReport)).Methods(http.MethodGet)
	s.HandleFunc("/actuals/{id}", h.requirePage(access.PageActualSales, h.handleDeleteActualSales)).Methods(http.MethodDelete)

	s.HandleFunc("/campaigns", h.requirePage(access.PageTargetAds, h.handleListCampaigns)).Methods(http.MethodGet)
	s.HandleFunc("/campaigns", h.requirePage(access.PageTargetAds, h.handleCreateCampaign)).Methods(http.MethodPost)
	s.HandleFunc("/campaigns/{id}", h.requirePage(access.PageTargetAds, h.handleGetCampaign)).Methods(http.MethodGet)
	s.HandleFunc("/campaigns/{id}", h.requirePage(access.PageTargetAds, h.handleDeleteCampaign)).Methods(http.MethodDelete)
	s.HandleFunc("/campaigns/{id}/submit", h.requirePage(access.PageTargetAds, h.handleSubmitCampaign)).Methods(http.MethodPost)

	s.HandleFunc("/{kind}/import", h.handleImport).Methods(http.MethodPost)

	api.HandleFunc("/dashboard/sales", h.requirePage(access.PageSalesDashboard, h.handleSalesDashboard)).Methods(http.MethodGet)
}

func salesFilter(r *http.Request) (sales.Filter, error) {
	q := r.URL.Query()
	year, err := queryInt(r, "year")
	if err != nil {
		return sales.Filter{}, err
	}
	filter := sales.Filter{
		Search:    strings.TrimSpace(q.Get("search")),
		Year:      year,
		BrandCode: strings.TrimSpace(q.Get("brand")),
		Channel:   strings.TrimSpace(q.Get("channel")),
	}
	if month := strings.TrimSpace(q.Get("month")); month != "" && month != constants.FilterAll {
		m, err := datetime.ParseMonth(month)
		if err != nil {
			return sales.Filter{}, err
		}
		filter.Month = m
	}
	return filter, nil
}

func (h *handler) handleListTargets(w http.ResponseWriter, r *http.Request) {
	filter, err := salesFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleListTargets")
		return
	}
	h.writeJSON(w, http.StatusOK, h.book.Targets(roleOf(r), filter))
}

func (h *handler) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	var t sales.TargetSales
	if !h.decode(w, r, &t, "server.handleCreateTarget") {
		return
	}
	stored, err := h.book.CreateTarget(roleOf(r), t)
	if err != nil {
		h.fail(w, r, err, "server.handleCreateTarget")
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *handler) handleGetTarget(w http.ResponseWriter, r *http.Request) {
	t, err := h.book.Target(roleOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "server.handleGetTarget")
		return
	}
	h.writeJSON(w, http.StatusOK, t)
}

func (h *handler) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	if err := h.book.DeleteTarget(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleDeleteTarget")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	filter, err := salesFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleListReports")
		return
	}
	h.writeJSON(w, http.StatusOK, h.book.Reports(roleOf(r), filter))
}

func (h *handler) handleCreateActualSales(w http.ResponseWriter, r *http.Request) {
	var a sales.ActualSales
	if !h.decode(w, r, &a, "server.handleCreateActualSales") {
		return
	}
	report, err := h.book.CreateActual(roleOf(r), a)
	if err != nil {
		h.fail(w, r, err, "server.handleCreateActualSales")
		return
	}
	h.writeJSON(w, http.StatusCreated, report)
}

func (h *handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.book.Report(roleOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "server.handleGetReport")
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) handleDeleteActualSales(w http.ResponseWriter, r *http.Request) {
	if err := h.book.DeleteActual(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleDeleteActualSales")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := salesFilter(r)
	if err != nil {
		h.fail(w, r, err, "server.handleListCampaigns")
		return
	}
	h.writeJSON(w, http.StatusOK, h.book.Campaigns(roleOf(r), filter))
}

func (h *handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var c sales.Campaign
	if !h.decode(w, r, &c, "server.handleCreateCampaign") {
		return
	}
	stored, err := h.book.CreateCampaign(roleOf(r), c)
	if err != nil {
		h.fail(w, r, err, "server.handleCreateCampaign")
		return
	}
	h.writeJSON(w, http.StatusCreated, stored)
}

func (h *handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.book.Campaign(roleOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "server.handleGetCampaign")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *handler) handleSubmitCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.book.SubmitCampaign(roleOf(r), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err, "server.handleSubmitCampaign")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.book.DeleteCampaign(roleOf(r), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err, "server.handleDeleteCampaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleImport(w http.ResponseWriter, r *http.Request) {
	kind, err := sales.ParseImportKind(mux.Vars(r)["kind"])
	if err != nil {
		h.fail(w, r, err, "server.handleImport")
		return
	}
	name, size, ok := h.receiveFile(w, r, "server.handleImport")
	if !ok {
		return
	}
	imp, err := h.book.AcknowledgeImport(roleOf(r), kind, name, size)
	if err != nil {
		h.fail(w, r, err, "server.handleImport")
		return
	}
	h.writeJSON(w, http.StatusAccepted, imp)
}

func (h *handler) handleSalesDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := h.salesOpts
	year, err := queryInt(r, "year")
	if err != nil {
		h.fail(w, r, err, "server.handleSalesDashboard")
		return
	}
	if year > 0 {
		opts.Year = year
	}
	if brand := strings.TrimSpace(q.Get("brand")); brand != "" {
		opts.BrandCode = brand
	}
	if channel := strings.TrimSpace(q.Get("channel")); channel != "" {
		opts.Channel = channel
	}
	period, err := sales.ParsePeriod(strings.TrimSpace(q.Get("period")))
	if err != nil {
		h.fail(w, r, err, "server.handleSalesDashboard")
		return
	}
	opts.Period = period
	h.writeJSON(w, http.StatusOK, h.book.Dashboard(roleOf(r), opts))
}
