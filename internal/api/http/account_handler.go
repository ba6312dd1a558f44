package http

import (
	"net/http"
	"strconv"

	"gardenhub-backend/internal/service"
)

type AccountHandler struct {
	users         service.UserService
	entitlements  service.EntitlementService
	notifications service.NotificationService
	crops         service.CropService
}

func NewAccountHandler(
	users service.UserService,
	entitlements service.EntitlementService,
	notifications service.NotificationService,
	crops service.CropService,
) *AccountHandler {
	return &AccountHandler{
		users:         users,
		entitlements:  entitlements,
		notifications: notifications,
		crops:         crops,
	}
}

func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	user, err := h.users.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req service.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.users.UpdateProfile(r.Context(), userID, req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Roles reports the caller's derived memberships so the client can
// decide which areas of the app to show.
func (h *AccountHandler) Roles(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	gardener, err := h.entitlements.IsGardener(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	manager, err := h.entitlements.IsGardenManager(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	picker, err := h.entitlements.IsPicker(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{
		"is_gardener":       gardener,
		"is_garden_manager": manager,
		"is_picker":         picker,
		"is_anything":       gardener || manager,
	})
}

func (h *AccountHandler) Peers(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	peers, err := h.entitlements.GetPeers(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, peers)
}

func (h *AccountHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", 20)
	notes, total, err := h.notifications.GetNotifications(r.Context(), userID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total":         total,
	})
}

func (h *AccountHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	noteID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := h.notifications.MarkAsRead(r.Context(), userID, noteID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (h *AccountHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	crops, err := h.crops.ListCrops(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, crops)
}

func queryInt(r *http.Request, name string, def int32) int32 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}
