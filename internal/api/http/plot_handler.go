package http

import (
	"net/http"

	"gardenhub-backend/internal/service"
)

type PlotHandler struct {
	plots service.PlotService
}

func NewPlotHandler(plots service.PlotService) *PlotHandler {
	return &PlotHandler{plots: plots}
}

func (h *PlotHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	plots, err := h.plots.ListPlots(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plots)
}

func (h *PlotHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	plotID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid plot id")
		return
	}
	plot, err := h.plots.GetPlot(r.Context(), userID, plotID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plot)
}

func (h *PlotHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req struct {
		GardenID int32  `json:"garden_id"`
		Title    string `json:"title"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	plot, err := h.plots.CreatePlot(r.Context(), userID, req.GardenID, req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plot)
}

func (h *PlotHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	plotID, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid plot id")
		return
	}
	var req service.UpdatePlotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	plot, err := h.plots.UpdatePlot(r.Context(), userID, plotID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plot)
}
