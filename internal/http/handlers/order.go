package handlers

import (
	"net/http"
	"strconv"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
)

// OrderHandler serves HTTP endpoints for order resources.
type OrderHandler struct {
	uc     orderUsecase
	logger logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	logger = logx.OrNop(logger)
	return &OrderHandler{uc: uc, logger: logger}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := req.toModel()
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	if o.Status == "" {
		o.Status = domain.StatusPending
	}

	id, err := h.uc.Create(r.Context(), &o)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/orders/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// List handles GET /orders.
// Filter parameters (status, city, from, to) select a search, sort and order select a sorted listing.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := parseDate(q.Get("from"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid from")
		return
	}
	to, err := parseDate(q.Get("to"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid to")
		return
	}
	f := domain.OrderFilter{
		Status: domain.OrderStatus(q.Get("status")),
		City:   q.Get("city"),
		From:   from,
		To:     to,
	}

	var list []domain.Order
	switch {
	case !f.Empty():
		list, err = h.uc.Search(r.Context(), f)
	case q.Get("sort") != "" || q.Get("order") != "":
		asc, perr := parseAscending(q.Get("order"))
		if perr != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid order")
			return
		}
		list, err = h.uc.Sort(r.Context(), q.Get("sort"), asc)
	default:
		list, err = h.uc.List(r.Context())
	}
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// GetByID handles GET /orders/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	o, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// Update handles PUT /orders/{id}. The body replaces every field of the order, status included.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req orderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	o, err := req.toModel()
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date")
		return
	}
	o.ID = id

	if err := h.uc.Update(r.Context(), &o); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.uc.Delete(r.Context(), id); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assign handles POST /orders/{id}/assign.
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.uc.AssignCourier(r.Context(), id, req.CourierID); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{
		"order_id":   id,
		"courier_id": req.CourierID,
		"status":     string(domain.StatusInProgress),
	})
}

// ChangeStatus handles POST /orders/{id}/status.
func (h *OrderHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if err := h.uc.ChangeStatus(r.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"order_id": id, "status": req.Status})
}

// Overdue handles GET /orders/overdue.
func (h *OrderHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.Overdue(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// NextID handles GET /orders/next-id.
func (h *OrderHandler) NextID(w http.ResponseWriter, r *http.Request) {
	id, err := h.uc.NextID(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nextIDResponse{NextID: id})
}

// StatsByStatus handles GET /orders/stats/status.
func (h *OrderHandler) StatsByStatus(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.StatsByStatus(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nonNil(stats))
}

// StatsByCity handles GET /orders/stats/city.
func (h *OrderHandler) StatsByCity(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.StatsByCity(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nonNil(stats))
}

// AverageDelay handles GET /orders/stats/average-delay.
func (h *OrderHandler) AverageDelay(w http.ResponseWriter, r *http.Request) {
	avg, err := h.uc.AverageDeliveryDelay(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, averageDelayResponse{AverageDelayDays: avg})
}
