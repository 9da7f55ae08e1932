package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/domain"
)

// deliveryRow pairs a delivery with its resolved display address.
type deliveryRow struct {
	Delivery domain.Delivery
	Address  string
}

type deliveryListView struct {
	Page  domain.Page[domain.Delivery]
	Rows  []deliveryRow
	Error string
}

func (s *Server) handleDeliveryList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result, err := s.app.Deliveries.List(r.Context(), page, app.DefaultPageSize)
	view := deliveryListView{Page: result}
	if err != nil {
		view.Error = noticeFor(err).Message
	}
	for _, d := range result.Content {
		view.Rows = append(view.Rows, deliveryRow{Delivery: d, Address: d.ResolveAddress().String()})
	}
	s.render(w, r, "deliveries_list.html", "Entregas", view)
}

// deliveryFormView feeds the creation form. LookupKey correlates this form
// instance with its server-side debounce flow; DebounceMs tells the form
// script how long the quiet period is, so the loading indicator covers only
// the network call. Number, Neighborhood and Complement are operator-facing
// only - the remote API accepts just the four CreateDeliveryRequest fields.
type deliveryFormView struct {
	OrderID      string
	LookupKey    string
	DebounceMs   int64
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
	Error        string
}

func (s *Server) newDeliveryForm(orderID string) deliveryFormView {
	return deliveryFormView{
		OrderID:    orderID,
		LookupKey:  uuid.NewString(),
		DebounceMs: s.app.Config.Lookup.Debounce.Milliseconds(),
	}
}

func (s *Server) handleDeliveryNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "delivery_new.html", "Nova Entrega",
		s.newDeliveryForm(r.URL.Query().Get("orderId")))
}

func (s *Server) handleDeliveryCreate(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	orderID := r.FormValue("orderId")
	req := domain.CreateDeliveryRequest{
		Street:  r.FormValue("street"),
		City:    r.FormValue("city"),
		State:   r.FormValue("state"),
		ZipCode: r.FormValue("zipCode"),
	}

	delivery, err := s.app.Deliveries.Create(r.Context(), orderID, req)
	if err != nil {
		view := s.newDeliveryForm(orderID)
		view.Street = req.Street
		view.Number = r.FormValue("number")
		view.Complement = r.FormValue("complement")
		view.Neighborhood = r.FormValue("neighborhood")
		view.City = req.City
		view.State = req.State
		view.ZipCode = req.ZipCode
		if errors.Is(err, domain.ErrMissingOrderID) || errors.Is(err, domain.ErrIncompleteAddress) {
			view.Error = err.Error()
		} else {
			view.Error = noticeFor(err).Message
		}
		s.render(w, r, "delivery_new.html", "Nova Entrega", view)
		return
	}
	setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Entrega criada com sucesso!"})
	http.Redirect(w, r, pathDeliveries+"/"+delivery.ID, http.StatusFound)
}

// deliveryDetailView feeds the detail page with the resolved address variant
// and, optionally, the tracking history.
type deliveryDetailView struct {
	Delivery    domain.Delivery
	Address     domain.AddressView
	AllStatuses []domain.DeliveryStatus
}

func (s *Server) handleDeliveryDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	includeTracking := r.URL.Query().Get("includeTracking") == "true"

	delivery, err := s.app.Deliveries.Get(r.Context(), id, includeTracking)
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathDeliveries, http.StatusFound)
		return
	}
	s.render(w, r, "delivery_detail.html", "Entrega "+delivery.ID, deliveryDetailView{
		Delivery:    delivery,
		Address:     delivery.ResolveAddress(),
		AllStatuses: domain.DeliveryStatuses,
	})
}

// handleDeliveryStatus requests a transition to any selected status; there
// is intentionally no client-side transition guard.
func (s *Server) handleDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := domain.DeliveryStatus(r.FormValue("status"))
	_, err := s.app.Deliveries.UpdateStatus(r.Context(), id, status)
	if err != nil {
		setFlash(w, noticeFor(err))
	} else {
		setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Status atualizado com sucesso!"})
	}
	http.Redirect(w, r, pathDeliveries+"/"+id, http.StatusFound)
}

func (s *Server) handleDeliveryAssign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	personID := r.FormValue("deliveryPersonId")
	_, err := s.app.Deliveries.Assign(r.Context(), id, personID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingDeliveryPerson) {
			setFlash(w, app.Notice{Level: app.NoticeError, Message: err.Error()})
		} else {
			setFlash(w, noticeFor(err))
		}
	} else {
		setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Entregador atribuído com sucesso!"})
	}
	http.Redirect(w, r, pathDeliveries+"/"+id, http.StatusFound)
}
