package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"payment-insights-go/internal/aggregator"
	"payment-insights-go/internal/dataset"
	"payment-insights-go/internal/export"
	"payment-insights-go/internal/filter"
	"payment-insights-go/internal/logger"
	"payment-insights-go/internal/pipeline"
	"payment-insights-go/internal/types"
)

// Handler serves the dashboard endpoints for one pipeline.
type Handler struct {
	svc *pipeline.Service
	log *logger.Logger
}

// NewHandler builds a handler.
func NewHandler(svc *pipeline.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log.Component("httpapi")}
}

// Options lists the selector values and ordinal category orders.
type Options struct {
	Platforms   []string            `json:"platforms"`
	Frequencies []string            `json:"frequencies"`
	Ordinal     map[string][]string `json:"ordinal"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "ok")
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts := Options{
		Platforms:   filter.PlatformOptions(),
		Frequencies: filter.FrequencyOptions(),
		Ordinal:     map[string][]string{},
	}
	for _, f := range types.Fields() {
		if order := types.OrdinalOrder(f); order != nil {
			opts.Ordinal[f.String()] = order
		}
	}
	JSON(w, http.StatusOK, opts)
}

func (h *Handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, dataset.Describe(h.svc.Table()))
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.dashboard(w, r)
	if !ok {
		return
	}
	JSON(w, http.StatusOK, d)
}

// handleCrossTab counts pairs of any two fields over the selection.
func (h *Handler) handleCrossTab(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rowName, colName := q.Get("row"), q.Get("col")
	if rowName == "" {
		rowName = types.FieldPrimaryWallet.String()
	}
	if colName == "" {
		colName = types.FieldEaseOfUse.String()
	}
	rowField, ok := types.FieldByName(rowName)
	if !ok {
		Problem(w, http.StatusBadRequest, "Unknown Field", fmt.Sprintf("row %q is not a field", rowName))
		return
	}
	colField, ok := types.FieldByName(colName)
	if !ok {
		Problem(w, http.StatusBadRequest, "Unknown Field", fmt.Sprintf("col %q is not a field", colName))
		return
	}
	sel := filter.Selection{Platform: q.Get("platform"), Frequency: q.Get("frequency")}
	if err := sel.Validate(); err != nil {
		h.fail(w, r, err, "crosstab failed")
		return
	}
	view := filter.Apply(h.svc.Table(), sel)
	JSON(w, http.StatusOK, aggregator.CrossTab(view, rowField, colField))
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	d, ok := h.dashboard(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteDashboardCSV(&buf, d); err != nil {
		h.fail(w, r, err, "csv export failed")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(d.Filters, "csv"))
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleXLSX(w http.ResponseWriter, r *http.Request) {
	d, ok := h.dashboard(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteDashboardXLSX(&buf, d); err != nil {
		h.fail(w, r, err, "xlsx export failed")
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(d.Filters, "xlsx"))
	_, _ = w.Write(buf.Bytes())
}

// dashboard reads the selection from the query and builds it. On failure
// the error response is already written.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) (types.Dashboard, bool) {
	q := r.URL.Query()
	sel := filter.Selection{
		Platform:  q.Get("platform"),
		Frequency: q.Get("frequency"),
	}
	d, err := h.svc.Dashboard(r.Context(), sel)
	if err != nil {
		h.fail(w, r, err, "dashboard failed")
		return types.Dashboard{}, false
	}
	h.log.WithRequest(r).
		WithField("selection", sel.Key()).
		WithField("matched", d.Filters.Matched).
		Debug("dashboard built")
	return d, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	entry := h.log.WithRequest(r).WithField("error", err.Error())
	if errors.Is(err, filter.ErrInvalidSelection) {
		entry.Warn(msg)
	} else {
		entry.Error(msg)
	}
	RespondError(w, err)
}

func attachment(f types.FilterInfo, ext string) string {
	name := "dashboard_" + slug(f.Platform) + "_" + slug(f.Frequency)
	return fmt.Sprintf("attachment; filename=%q", name+"."+ext)
}

func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-"))
}
