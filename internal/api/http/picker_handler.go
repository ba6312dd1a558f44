package http

import (
	"net/http"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/service"
)

type PickerHandler struct {
	entitlements service.EntitlementService
	orders       service.OrderService
	picks        service.PickService
}

func NewPickerHandler(entitlements service.EntitlementService, orders service.OrderService, picks service.PickService) *PickerHandler {
	return &PickerHandler{entitlements: entitlements, orders: orders, picks: picks}
}

func (h *PickerHandler) Gardens(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	gardens, err := h.entitlements.GetPickerGardens(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gardens)
}

type pickerOrderView struct {
	domain.Order
	PickedToday bool `json:"picked_today"`
}

// Orders lists the active orders awaiting this picker, each flagged
// with whether its plot has already been picked today.
func (h *PickerHandler) Orders(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	orders, err := h.entitlements.GetPickerOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]pickerOrderView, 0, len(orders))
	for i := range orders {
		picked, err := h.orders.WasPickedToday(r.Context(), &orders[i])
		if err != nil {
			logger.Error("failed to check today's picks", "order_id", orders[i].ID, "error", err)
		}
		views = append(views, pickerOrderView{Order: orders[i], PickedToday: picked})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *PickerHandler) CreatePick(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		PlotID  int32   `json:"plot_id"`
		CropIDs []int32 `json:"crop_ids"`
		Comment string  `json:"comment"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	pick, err := h.picks.CreatePick(r.Context(), userID, req.PlotID, req.CropIDs, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pick)
}
