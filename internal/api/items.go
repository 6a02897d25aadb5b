package api

import (
	"database/sql"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zanovak/katalog/internal/model"
	"github.com/zanovak/katalog/internal/store"
)

// MaxPageSize bounds the page size a client may request.
const MaxPageSize = 100

// DefaultPageSize is used when the client doesn't ask for a page size.
const DefaultPageSize = 10

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	DB  *sql.DB
	Log *zap.Logger
}

type itemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (req itemRequest) item() model.Item {
	return model.Item{
		Name:        req.Name,
		Category:    req.Category,
		Color:       req.Color,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

type pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type listResponse struct {
	Items      []model.Item `json:"items"`
	Pagination pagination   `json:"pagination"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := store.ItemFilter{
		Search:    q.Get("search"),
		Category:  q.Get("category"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
	if raw := q.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid id filter")
			return
		}
		filter.ID = id
	}

	page := intParam(q.Get("page"), 1, math.MaxInt)
	limit := intParam(q.Get("limit"), DefaultPageSize, MaxPageSize)

	items, total, err := store.ListItems(r.Context(), h.DB, filter, page, limit)
	if err != nil {
		h.Log.Error("listing items failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, listResponse{
		Items: items,
		Pagination: pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: (total + limit - 1) / limit,
		},
	})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		h.Log.Error("getting item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := req.item()
	if err := item.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := store.CreateItem(r.Context(), h.DB, item)
	if err != nil {
		h.Log.Error("creating item failed", zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PUT /api/items/{id} (full replace).
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req itemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := req.item()
	if err := item.Validate(); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		h.Log.Error("getting item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	h.update(w, r, id, item)
}

// Patch handles PATCH /api/items/{id} (partial merge). Fields present
// in the body replace the stored values verbatim, so an explicit empty
// string clears a field — even a required one.
func (h *ItemsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		h.Log.Error("getting item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	h.update(w, r, id, patch.Apply(*existing))
}

// update writes the full record and responds with the stored row.
// Callers have already verified the item exists.
func (h *ItemsHandler) update(w http.ResponseWriter, r *http.Request, id int64, item model.Item) {
	if err := store.UpdateItem(r.Context(), h.DB, id, item); err != nil {
		h.Log.Error("updating item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	updated, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		h.Log.Error("getting item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to fetch item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "item updated",
		"item":    updated,
	})
}

// Delete handles DELETE /api/items/{id}. Deleting an unknown id still
// reports success.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, id); err != nil {
		h.Log.Error("deleting item failed", zap.Int64("id", id), zap.Error(err))
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// intParam parses a positive integer query parameter, falling back to
// def when absent or invalid and clamping to max.
func intParam(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
