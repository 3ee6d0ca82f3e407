package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/de-tools/finsync/pkg/adapters"
	"github.com/de-tools/finsync/pkg/models/api"
	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/services/dashboard"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	ctrl    dashboard.Controller
	presets config.Presets
}

func NewHandler(ctrl dashboard.Controller, presets config.Presets) *Handler {
	return &Handler{
		ctrl:    ctrl,
		presets: presets,
	}
}

// GetHistory applies the filter from the query string (or a named preset)
// and returns the first page of the new view.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var filter domain.Filter
	if name := query.Get("preset"); name != "" {
		preset, err := h.presets.GetPreset(ctx, name)
		if err != nil {
			h.fail(w, r, err, "failed to load preset")
			return
		}
		filter = *preset
	} else {
		method, err := domain.ParseMethodSelector(query.Get("method"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		view, err := domain.ParseGranularity(query.Get("view"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filter = domain.Filter{
			Range:       domain.DateRange{Start: query.Get("from"), End: query.Get("to")},
			Method:      method,
			Granularity: view,
		}
	}

	view, err := h.ctrl.Apply(ctx, filter)
	if err != nil {
		h.fail(w, r, err, "failed to apply filter")
		return
	}
	writeJSON(w, r, adapters.MapViewDomainToApi(view))
}

func (h *Handler) GetCurrentHistory(w http.ResponseWriter, r *http.Request) {
	view, err := h.ctrl.Current()
	if err != nil {
		h.fail(w, r, err, "failed to get current view")
		return
	}
	writeJSON(w, r, adapters.MapViewDomainToApi(view))
}

func (h *Handler) NextPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.ctrl.NextPage()
	if err != nil {
		h.fail(w, r, err, "failed to turn page")
		return
	}
	writeJSON(w, r, adapters.MapViewDomainToApi(view))
}

func (h *Handler) PrevPage(w http.ResponseWriter, r *http.Request) {
	view, err := h.ctrl.PrevPage()
	if err != nil {
		h.fail(w, r, err, "failed to turn page")
		return
	}
	writeJSON(w, r, adapters.MapViewDomainToApi(view))
}

func (h *Handler) GoToPage(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(chi.URLParam(r, "page"))
	if err != nil {
		http.Error(w, "invalid page number", http.StatusBadRequest)
		return
	}

	view, err := h.ctrl.GoToPage(page)
	if err != nil {
		h.fail(w, r, err, "failed to turn page")
		return
	}
	writeJSON(w, r, adapters.MapViewDomainToApi(view))
}

func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	detail, err := h.ctrl.DayDetail(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.fail(w, r, err, "failed to get day detail")
		return
	}
	writeJSON(w, r, adapters.MapDayDetailDomainToApi(detail))
}

func (h *Handler) ExportDay(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.ctrl.ExportDay(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.fail(w, r, err, "failed to export day")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	encode(w, r, adapters.MapExportReceiptDomainToApi(receipt))
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	first := domain.DateRange{Start: query.Get("p1_from"), End: query.Get("p1_to")}
	second := domain.DateRange{Start: query.Get("p2_from"), End: query.Get("p2_to")}

	cmp, err := h.ctrl.Compare(r.Context(), first, second)
	if err != nil {
		h.fail(w, r, err, "failed to compare periods")
		return
	}
	writeJSON(w, r, adapters.MapComparisonDomainToApi(cmp))
}

func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := domain.TransactionQuery{
		Date:   query.Get("date"),
		Search: query.Get("search"),
	}
	if s := query.Get("status"); s != "" && s != "all" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q.Status = status
	}

	txs, err := h.ctrl.SearchTransactions(r.Context(), q)
	if err != nil {
		h.fail(w, r, err, "failed to search transactions")
		return
	}
	writeJSON(w, r, adapters.MapDatedTransactionsDomainToApi(txs))
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req api.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid export request body", http.StatusBadRequest)
		return
	}
	req.ReportType = strings.ToLower(req.ReportType)
	req.Format = strings.ToLower(req.Format)

	receipt, err := h.ctrl.Export(r.Context(), adapters.MapExportRequestApiToDomain(req))
	if err != nil {
		h.fail(w, r, err, "failed to export report")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	encode(w, r, adapters.MapExportReceiptDomainToApi(receipt))
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := h.presets.GetPresets(ctx)
	if err != nil {
		h.fail(w, r, err, "failed to list presets")
		return
	}

	response := make([]api.Preset, 0, len(names))
	for _, name := range names {
		preset, err := h.presets.GetPreset(ctx, name)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("preset", name).Msg("skipping invalid preset")
			continue
		}
		response = append(response, adapters.MapPresetDomainToApi(name, *preset))
	}
	writeJSON(w, r, response)
}

func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Reload(r.Context()); err != nil {
		h.fail(w, r, err, "failed to reload historical data")
		return
	}
	h.GetCurrentHistory(w, r)
}

// fail maps controller errors onto status codes. Validation errors are
// returned verbatim, anything else is logged and reported generically.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, config.ErrPresetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrMissingDateRange),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidGranularity),
		errors.Is(err, domain.ErrInvalidMethod),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidExport):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotLoaded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(msg)
		http.Error(w, msg, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	encode(w, r, v)
}

func encode(w http.ResponseWriter, r *http.Request, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
