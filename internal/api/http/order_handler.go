package http

import (
	"net/http"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/service"
	"gardenhub-backend/internal/utils"
)

type OrderHandler struct {
	orders service.OrderService
	clk    clock.Clock
}

func NewOrderHandler(orders service.OrderService, clk clock.Clock) *OrderHandler {
	return &OrderHandler{orders: orders, clk: clk}
}

// orderView decorates an order with its derived lifecycle fields so
// clients never have to re-implement the date math.
type orderView struct {
	domain.Order
	Status   domain.OrderStatus `json:"status"`
	Progress float64            `json:"progress"`
}

func (h *OrderHandler) view(o domain.Order) orderView {
	today := utils.DateOf(h.clk.Today())
	return orderView{
		Order:    o,
		Status:   o.Status(today),
		Progress: o.Progress(h.clk.Now(), h.clk.Location()),
	}
}

func (h *OrderHandler) views(orders []domain.Order) []orderView {
	out := make([]orderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, h.view(o))
	}
	return out
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orders, err := h.orders.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.views(orders))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.orders.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view(*order))
}

func (h *OrderHandler) Picks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}
	picks, err := h.orders.GetOrderPicks(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	if picks == nil {
		picks = []domain.Pick{}
	}
	writeJSON(w, http.StatusOK, picks)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req service.CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.orders.CreateOrder(r.Context(), userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h.view(*order))
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.orders.CancelOrder(r.Context(), userID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.view(*order))
}
