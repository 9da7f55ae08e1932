package web

import (
	"encoding/json"
	"net/http"

	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/domain"
)

// lookupResponse is the JSON answer for a settled lookup submission.
type lookupResponse struct {
	Outcome string          `json:"outcome"`
	Message string          `json:"message,omitempty"`
	Address *domain.Address `json:"address,omitempty"`
	// CallMs is the network-call duration; the form's loading indicator
	// covers only that span, never the quiet-period wait.
	CallMs int64 `json:"callMs"`
}

// handleAddressLookup feeds one keystroke of postal-code input into the
// form's debounce flow and blocks until that input is settled or superseded.
// Superseded and skipped inputs answer 204: nothing to render for them.
func (s *Server) handleAddressLookup(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	zip := r.URL.Query().Get("zip")
	if key == "" {
		http.Error(w, "missing lookup key", http.StatusBadRequest)
		return
	}

	flow := s.app.Lookups.Flow(key)
	result := flow.Submit(r.Context(), zip)

	switch result.Outcome {
	case app.LookupSuperseded, app.LookupSkipped:
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := lookupResponse{
		Message: result.Notice.Message,
		CallMs:  result.CallDuration.Milliseconds(),
	}
	switch result.Outcome {
	case app.LookupFound:
		resp.Outcome = "found"
		addr := result.Address
		resp.Address = &addr
	case app.LookupNotFound:
		resp.Outcome = "not_found"
	default:
		resp.Outcome = "failed"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error("encode lookup response", "err", err)
	}
}
