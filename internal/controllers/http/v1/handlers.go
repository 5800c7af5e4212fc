package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ArdaDrcn/Cwepp/internal/dashboard"
	"github.com/ArdaDrcn/Cwepp/internal/report"
)

// the board is read-only, so the handler owns the dashboard service and the
// report writer directly - no extra dto/repository layers for three GETs
type v1Handler struct {
	svc     *dashboard.Service
	reports *report.Writer
}

func NewV1Handler(svc *dashboard.Service, reports *report.Writer) *v1Handler {
	return &v1Handler{
		svc:     svc,
		reports: reports,
	}
}

func (h *v1Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/cards", h.handleCards)
	mux.HandleFunc("/api/v1/pulse", h.handlePulse)
	mux.HandleFunc("/api/v1/export", h.handleExport)
	return mux
}

type cardsOutput struct {
	Cards []dashboard.Card `json:"cards"`
}

// full board model, fetched once when the page builds itself
func (h *v1Handler) handleCards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	cards, err := h.svc.Cards(r.Context())
	if err != nil {
		slog.Error("error while building cards", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, cardsOutput{Cards: cards})
}

// compact payload the browser polls every few seconds; the client diffs
// changed_at per device and skips re-rendering unchanged ones
func (h *v1Handler) handlePulse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	pulse, err := h.svc.Pulse(r.Context())
	if err != nil {
		slog.Error("error while building pulse", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, pulse)
}

type exportOutput struct {
	Exported int `json:"exported"`
}

func (h *v1Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	cards, err := h.svc.Cards(r.Context())
	if err != nil {
		slog.Error("error while building cards for export", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	written := h.reports.WriteSnapshot(cards)
	writeJSON(w, exportOutput{Exported: written})
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("error while marshaling response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
