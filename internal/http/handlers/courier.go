package handlers

import (
	"net/http"
	"strconv"

	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/logx"
)

// CourierHandler serves HTTP endpoints for courier resources.
type CourierHandler struct {
	uc     courierUsecase
	logger logx.Logger
}

// NewCourierHandler wires a courierUsecase into HTTP handlers.
func NewCourierHandler(logger logx.Logger, uc courierUsecase) *CourierHandler {
	logger = logx.OrNop(logger)
	return &CourierHandler{uc: uc, logger: logger}
}

// Create handles POST /couriers.
func (h *CourierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req courierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	c := req.toModel()

	id, err := h.uc.Create(r.Context(), &c)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/couriers/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// List handles GET /couriers.
func (h *CourierHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := domain.CourierFilter{Name: q.Get("name"), Zone: q.Get("zone")}
	if s := q.Get("available"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid available")
			return
		}
		f.AvailableOnly = v
	}

	var (
		list []domain.Courier
		err  error
	)
	switch {
	case f.Name != "" || f.Zone != "" || f.AvailableOnly:
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
	writeJSON(h.logger, w, r, http.StatusOK, couriersToResponse(list))
}

// GetByID handles GET /couriers/{id}.
func (h *CourierHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(c))
}

// Update handles PUT /couriers/{id}.
func (h *CourierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req courierRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	c := req.toModel()
	c.ID = id

	if err := h.uc.Update(r.Context(), &c); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(c))
}

// Delete handles DELETE /couriers/{id} and reports how many orders went with the courier.
func (h *CourierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	res, err := h.uc.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deleteCourierResponse{ID: res.CourierID, CascadedOrders: res.CascadedOrders})
}

// SetAvailability handles PUT /couriers/{id}/availability.
func (h *CourierHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req availabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Available == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "available is required")
		return
	}
	if err := h.uc.SetAvailability(r.Context(), id, *req.Available); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, map[string]any{"id": id, "available": *req.Available})
}

// Available handles GET /couriers/available.
func (h *CourierHandler) Available(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListAvailable(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, couriersToResponse(list))
}

// Overloaded handles GET /couriers/overloaded.
func (h *CourierHandler) Overloaded(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListOverloaded(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadsToResponse(list))
}

// Best handles GET /couriers/best?zone=.
func (h *CourierHandler) Best(w http.ResponseWriter, r *http.Request) {
	c, err := h.uc.Best(r.Context(), r.URL.Query().Get("zone"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, courierToResponse(c))
}

// OrderCount handles GET /couriers/{id}/orders/count.
func (h *CourierHandler) OrderCount(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	active, err := h.uc.ActiveOrderCount(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	total, err := h.uc.TotalOrderCount(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderCountResponse{CourierID: id, Active: active, Total: total})
}

// NextID handles GET /couriers/next-id.
func (h *CourierHandler) NextID(w http.ResponseWriter, r *http.Request) {
	id, err := h.uc.NextID(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nextIDResponse{NextID: id})
}

// StatsByZone handles GET /couriers/stats/zone.
func (h *CourierHandler) StatsByZone(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.StatsByZone(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, nonNil(stats))
}

// StatsByAvailability handles GET /couriers/stats/availability.
func (h *CourierHandler) StatsByAvailability(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.StatsByAvailability(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, availabilityStatsResponse{Available: stats[true], Busy: stats[false]})
}

// StatsByWorkload handles GET /couriers/stats/workload. Keys are courier ids.
func (h *CourierHandler) StatsByWorkload(w http.ResponseWriter, r *http.Request) {
	stats, err := h.uc.StatsByWorkload(r.Context())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if stats == nil {
		stats = map[int64]int{}
	}
	writeJSON(h.logger, w, r, http.StatusOK, stats)
}
