package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/service"
)

type GardenHandler struct {
	gardens service.GardenService
}

func NewGardenHandler(gardens service.GardenService) *GardenHandler {
	return &GardenHandler{gardens: gardens}
}

func pathID(r *http.Request, name string) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

func (h *GardenHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	gardens, err := h.gardens.ListGardens(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gardens)
}

func (h *GardenHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	gardenID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid garden id")
		return
	}
	garden, err := h.gardens.GetGarden(r.Context(), userID, gardenID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, garden)
}

func (h *GardenHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	gardenID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid garden id")
		return
	}
	var req struct {
		Title         string   `json:"title"`
		Address       string   `json:"address"`
		PhotoURL      string   `json:"photo_url"`
		MapImageURL   string   `json:"map_image_url"`
		ManagerEmails []string `json:"manager_emails"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	garden := &domain.Garden{
		ID:          gardenID,
		Title:       req.Title,
		Address:     req.Address,
		PhotoURL:    req.PhotoURL,
		MapImageURL: req.MapImageURL,
	}
	updated, err := h.gardens.UpdateGarden(r.Context(), userID, garden, req.ManagerEmails)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
