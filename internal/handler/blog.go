package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell/inkwell-api/internal/middleware"
	"github.com/inkwell/inkwell-api/internal/model"
	"github.com/inkwell/inkwell-api/internal/service"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc *service.BlogService) *BlogHandler {
	return &BlogHandler{service: svc}
}

// HandleCreate handles POST /blogs requests. The stored author is the
// authenticated caller, regardless of anything in the request body.
func (h *BlogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.CreateBlogRequest
	if !decodeBody(w, r, 5<<20, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired),
			errors.Is(err, service.ErrDescriptionRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("creating blog failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /blogs requests. Posts are returned newest first
// with authors resolved to their public projection.
func (h *BlogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing blogs failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, blogs)
}

// HandleGet handles GET /blogs/{id} requests.
func (h *BlogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid blog id"))
		return
	}

	blog, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("blog lookup failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, blog)
}
