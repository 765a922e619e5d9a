// internal/inventory/handler.go
package inventory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the full HTTP surface of the service. Middlewares are
// registered on the router itself so they observe the matched route
// pattern, not just the raw URL.
func (h *Handler) Routes(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range middlewares {
		r.Use(mw)
	}
	r.Get("/", h.handleRoot)
	r.Get("/items", h.handleListItems)
	r.Post("/items", h.handleCreateItem)
	r.Get("/items/{id}", h.handleGetItem)
	r.Put("/items/{id}", h.handleUpdateItem)
	r.Delete("/items/{id}", h.handleDeleteItem)
	return r
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to the Simple REST API",
		"endpoints": map[string]string{
			"GET /items":         "Get all items",
			"GET /items/{id}":    "Get item by ID",
			"POST /items":        "Create new item",
			"PUT /items/{id}":    "Update item",
			"DELETE /items/{id}": "Delete item",
		},
	})
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items := h.service.ListItems(r.Context())
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
		"count": len(items),
	})
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	item, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var draft ItemDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		// Wrong-typed fields and malformed bodies both count as
		// validation failures on the wire.
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := h.service.CreateItem(r.Context(), draft)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Item created successfully",
		"item":    item,
	})
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	var patch ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	item, err := h.service.UpdateItem(r.Context(), id, patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item updated successfully",
		"item":    item,
	})
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid item ID")
		return
	}

	item, err := h.service.DeleteItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item deleted successfully",
		"item":    item,
	})
}

func itemID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, ErrInvalidItem):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}
