package handler

import (
	"log/slog"
	"net/http"

	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/service"
)

// ItemHandler handles HTTP requests for items.
type ItemHandler struct {
	service *service.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{service: svc}
}

// HandleCreate handles POST /api requests.
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		slog.Error("creating item failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api requests.
func (h *ItemHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing items failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, items)
}
