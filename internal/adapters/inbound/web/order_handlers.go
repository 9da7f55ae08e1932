package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/veloro/deliverydesk/internal/app"
	"github.com/veloro/deliverydesk/internal/domain"
)

// orderListView feeds the paginated order table.
type orderListView struct {
	Page  domain.Page[domain.Order]
	Error string
}

func (s *Server) handleOrderList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	result, err := s.app.Orders.List(r.Context(), page, app.DefaultPageSize)
	view := orderListView{Page: result}
	if err != nil {
		view.Error = noticeFor(err).Message
	}
	s.render(w, r, "orders_list.html", "Pedidos", view)
}

// orderFormView feeds the creation form, round-tripping entered values and
// inline field errors on validation failure.
type orderFormView struct {
	CustomerID string
	Items      []orderFormItem
	Error      string
	Total      decimal.Decimal
}

type orderFormItem struct {
	ProductName string
	Quantity    string
	Price       string
	Error       string
}

func (s *Server) handleOrderNew(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "order_new.html", "Novo Pedido", orderFormView{
		Items: []orderFormItem{{Quantity: "1"}},
	})
}

// parseOrderForm turns the parallel item field arrays into a write intent.
// Malformed numbers become zero values and fail domain validation, keeping
// the error surface in one place.
func parseOrderForm(r *http.Request) (domain.CreateOrderRequest, orderFormView) {
	_ = r.ParseForm()
	names := r.Form["productName"]
	quantities := r.Form["quantity"]
	prices := r.Form["price"]

	view := orderFormView{CustomerID: r.FormValue("customerId")}
	req := domain.CreateOrderRequest{CustomerID: view.CustomerID}

	for i := range names {
		item := domain.OrderItem{ProductName: names[i]}
		formItem := orderFormItem{ProductName: names[i]}
		if i < len(quantities) {
			formItem.Quantity = quantities[i]
			item.Quantity, _ = strconv.Atoi(quantities[i])
		}
		if i < len(prices) {
			formItem.Price = prices[i]
			if p, err := decimal.NewFromString(prices[i]); err == nil {
				item.Price = p
			}
		}
		req.Items = append(req.Items, item)
		view.Items = append(view.Items, formItem)
	}
	return req, view
}

func (s *Server) handleOrderCreate(w http.ResponseWriter, r *http.Request) {
	req, view := parseOrderForm(r)

	if err := req.Validate(); err != nil {
		// Validation failed before any request was issued; annotate the rows.
		view.Error = err.Error()
		for i := range req.Items {
			if itemErr := req.Items[i].Validate(); itemErr != nil {
				view.Items[i].Error = itemErr.Error()
			}
		}
		if len(view.Items) == 0 {
			view.Items = []orderFormItem{{Quantity: "1"}}
		}
		view.Total = req.DisplayTotal()
		s.render(w, r, "order_new.html", "Novo Pedido", view)
		return
	}

	order, err := s.app.Orders.Create(r.Context(), req)
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathOrders+"/new", http.StatusFound)
		return
	}
	setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Pedido criado com sucesso!"})
	http.Redirect(w, r, pathOrders+"/"+order.ID, http.StatusFound)
}

// orderDetailView feeds the detail page, including the delivery resolved by
// the bounded scan when one exists.
type orderDetailView struct {
	Order       domain.Order
	Delivery    *domain.Delivery
	AllStatuses []domain.OrderStatus
}

func (s *Server) handleOrderDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := s.app.Orders.Get(r.Context(), id)
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathOrders, http.StatusFound)
		return
	}

	view := orderDetailView{Order: order, AllStatuses: domain.OrderStatuses}
	if delivery, ok := s.app.Deliveries.FindByOrder(r.Context(), id); ok {
		view.Delivery = &delivery
	}
	s.render(w, r, "order_detail.html", "Pedido "+order.ID, view)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	status := domain.OrderStatus(r.FormValue("status"))
	_, err := s.app.Orders.Update(r.Context(), id, domain.UpdateOrderRequest{Status: &status})
	if err != nil {
		setFlash(w, noticeFor(err))
	} else {
		setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Pedido atualizado com sucesso!"})
	}
	http.Redirect(w, r, pathOrders+"/"+id, http.StatusFound)
}

// handleOrderDeleteConfirm renders the confirmation step. No destructive
// call happens here; cancelling is just navigating away.
func (s *Server) handleOrderDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := s.app.Orders.Get(r.Context(), id)
	if err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathOrders, http.StatusFound)
		return
	}
	s.render(w, r, "order_delete.html", "Excluir Pedido", order)
}

// handleOrderDelete issues the destructive call, reachable only from the
// confirmation form.
func (s *Server) handleOrderDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.app.Orders.Delete(r.Context(), id); err != nil {
		setFlash(w, noticeFor(err))
		http.Redirect(w, r, pathOrders+"/"+id, http.StatusFound)
		return
	}
	setFlash(w, app.Notice{Level: app.NoticeSuccess, Message: "Pedido excluído com sucesso!"})
	http.Redirect(w, r, pathOrders, http.StatusFound)
}
