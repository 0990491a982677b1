package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"logistics-dispatch/internal/apperr"
	"logistics-dispatch/internal/domain"
	"logistics-dispatch/internal/service/order"
)

// stubOrderUsecase panics on any method without an override.
type stubOrderUsecase struct {
	orderUsecase

	createFn       func(ctx context.Context, o *domain.Order) (int64, error)
	getFn          func(ctx context.Context, id int64) (domain.Order, error)
	listFn         func(ctx context.Context) ([]domain.Order, error)
	updateFn       func(ctx context.Context, o *domain.Order) error
	deleteFn       func(ctx context.Context, id int64) error
	searchFn       func(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	sortFn         func(ctx context.Context, criterion string, asc bool) ([]domain.Order, error)
	assignFn       func(ctx context.Context, orderID, courierID int64) error
	changeStatusFn func(ctx context.Context, id int64, status domain.OrderStatus) error
}

func (s *stubOrderUsecase) Create(ctx context.Context, o *domain.Order) (int64, error) {
	return s.createFn(ctx, o)
}

func (s *stubOrderUsecase) Get(ctx context.Context, id int64) (domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderUsecase) List(ctx context.Context) ([]domain.Order, error) {
	return s.listFn(ctx)
}

func (s *stubOrderUsecase) Update(ctx context.Context, o *domain.Order) error {
	return s.updateFn(ctx, o)
}

func (s *stubOrderUsecase) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubOrderUsecase) Search(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	return s.searchFn(ctx, f)
}

func (s *stubOrderUsecase) Sort(ctx context.Context, criterion string, asc bool) ([]domain.Order, error) {
	return s.sortFn(ctx, criterion, asc)
}

func (s *stubOrderUsecase) AssignCourier(ctx context.Context, orderID, courierID int64) error {
	return s.assignFn(ctx, orderID, courierID)
}

func (s *stubOrderUsecase) ChangeStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	return s.changeStatusFn(ctx, id, status)
}

type statsOrderUsecase struct {
	orderUsecase
	err error
}

func (s statsOrderUsecase) Overdue(context.Context) ([]domain.Order, error) {
	return []domain.Order{{ID: 4, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Status: domain.StatusLate, City: "Sfax", ClientID: 1}}, s.err
}

func (s statsOrderUsecase) NextID(context.Context) (int64, error) { return 12, s.err }

func (s statsOrderUsecase) StatsByStatus(context.Context) (map[string]int, error) {
	return map[string]int{"En attente": 2}, s.err
}

func (s statsOrderUsecase) StatsByCity(context.Context) (map[string]int, error) {
	return nil, s.err
}

func (s statsOrderUsecase) AverageDeliveryDelay(context.Context) (float64, error) {
	return 2.5, s.err
}

func TestOrderHandler_Create_OK(t *testing.T) {
	t.Parallel()

	var got domain.Order
	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		createFn: func(_ context.Context, o *domain.Order) (int64, error) {
			got = *o
			return 7, nil
		},
	})

	rr := httptest.NewRecorder()
	h.Create(rr, newRequest(http.MethodPost, "/orders", `{"date":"2025-04-02","city":"Tunis","client_id":3}`, nil))

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "/orders/7", rr.Header().Get("Location"))
	require.Equal(t, int64(7), decodeBody[idResponse](t, rr).ID)

	require.Equal(t, domain.StatusPending, got.Status, "status defaults to pending")
	require.Equal(t, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), got.Date)
	require.Equal(t, int64(3), got.ClientID)
	require.False(t, got.Assigned())
}

func TestOrderHandler_Create_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad json", body: `{`, status: http.StatusBadRequest},
		{name: "bad date", body: `{"date":"02/04/2025","city":"T","client_id":1}`, status: http.StatusBadRequest},
		{name: "invalid", body: `{"date":"2025-04-02","city":"","client_id":1}`, err: apperr.ErrInvalid, status: http.StatusBadRequest},
		{name: "unknown courier", body: `{"date":"2025-04-02","city":"T","client_id":1,"courier_id":9}`, err: apperr.ErrNotFound, status: http.StatusNotFound},
		{name: "db", body: `{"date":"2025-04-02","city":"T","client_id":1}`, err: errors.New("db down"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewOrderHandler(testLogger(), &stubOrderUsecase{
				createFn: func(context.Context, *domain.Order) (int64, error) { return 0, tc.err },
			})
			rr := httptest.NewRecorder()
			h.Create(rr, newRequest(http.MethodPost, "/orders", tc.body, nil))
			require.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestOrderHandler_List_Dispatch(t *testing.T) {
	t.Parallel()

	var calls []string
	uc := &stubOrderUsecase{
		listFn: func(context.Context) ([]domain.Order, error) {
			calls = append(calls, "list")
			return nil, nil
		},
		searchFn: func(_ context.Context, f domain.OrderFilter) ([]domain.Order, error) {
			calls = append(calls, fmt.Sprintf("search:%s:%s:%s:%s", f.Status, f.City, formatDate(f.From), formatDate(f.To)))
			return []domain.Order{{ID: 1, Date: f.From, Status: f.Status, City: f.City, ClientID: 2, CourierID: 5}}, nil
		},
		sortFn: func(_ context.Context, criterion string, asc bool) ([]domain.Order, error) {
			calls = append(calls, fmt.Sprintf("sort:%s:%t", criterion, asc))
			return nil, nil
		},
	}
	h := NewOrderHandler(testLogger(), uc)

	rr := httptest.NewRecorder()
	h.List(rr, newRequest(http.MethodGet, "/orders", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, decodeBody[[]orderDTO](t, rr))

	rr = httptest.NewRecorder()
	h.List(rr, newRequest(http.MethodGet, "/orders?status=Livree&city=Tunis&from=2025-01-01&to=2025-01-31", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	found := decodeBody[[]orderDTO](t, rr)
	require.Len(t, found, 1)
	require.Equal(t, "2025-01-01", found[0].Date)
	require.NotNil(t, found[0].CourierID)
	require.Equal(t, int64(5), *found[0].CourierID)

	rr = httptest.NewRecorder()
	h.List(rr, newRequest(http.MethodGet, "/orders?sort=city&order=desc", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	require.Equal(t, []string{
		"list",
		"search:Livree:Tunis:2025-01-01:2025-01-31",
		"sort:city:false",
	}, calls)
}

func TestOrderHandler_List_BadQuery(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{})
	for _, q := range []string{"from=yesterday", "to=2025-13-01", "sort=city&order=up"} {
		rr := httptest.NewRecorder()
		h.List(rr, newRequest(http.MethodGet, "/orders?"+q, "", nil))
		require.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestOrderHandler_GetByID(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		getFn: func(_ context.Context, id int64) (domain.Order, error) {
			if id == 1 {
				return domain.Order{ID: 1, Date: time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC), Status: domain.StatusPending, City: "Tunis", ClientID: 3}, nil
			}
			return domain.Order{}, apperr.ErrNotFound
		},
	})

	rr := httptest.NewRecorder()
	h.GetByID(rr, newRequest(http.MethodGet, "/orders/1", "", map[string]string{"id": "1"}))
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[orderDTO](t, rr)
	require.Equal(t, "2025-05-06", got.Date)
	require.Equal(t, "En attente", got.Status)
	require.Nil(t, got.CourierID)

	rr = httptest.NewRecorder()
	h.GetByID(rr, newRequest(http.MethodGet, "/orders/2", "", map[string]string{"id": "2"}))
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.GetByID(rr, newRequest(http.MethodGet, "/orders/x", "", map[string]string{"id": "x"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Update(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		updateFn: func(_ context.Context, o *domain.Order) error {
			require.Equal(t, int64(3), o.ID)
			require.Equal(t, domain.StatusDelivered, o.Status)
			require.Equal(t, int64(8), o.CourierID)
			return nil
		},
	})

	rr := httptest.NewRecorder()
	body := `{"date":"2025-04-02","status":"Livree","city":"Sfax","client_id":1,"courier_id":8}`
	h.Update(rr, newRequest(http.MethodPut, "/orders/3", body, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, int64(3), decodeBody[orderDTO](t, rr).ID)
}

func TestOrderHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		updateFn: func(context.Context, *domain.Order) error { return apperr.ErrNotFound },
	})

	rr := httptest.NewRecorder()
	body := `{"date":"2025-04-02","status":"Livree","city":"Sfax","client_id":1}`
	h.Update(rr, newRequest(http.MethodPut, "/orders/3", body, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOrderHandler_Update_MissingStatusRejected(t *testing.T) {
	t.Parallel()

	var seen domain.OrderStatus
	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		updateFn: func(_ context.Context, o *domain.Order) error {
			seen = o.Status
			return apperr.ErrInvalid
		},
	})

	rr := httptest.NewRecorder()
	body := `{"date":"2025-01-01","city":"Tunis","client_id":1,"courier_id":4}`
	h.Update(rr, newRequest(http.MethodPut, "/orders/3", body, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Empty(t, seen, "update must not default the status")
}

func TestOrderHandler_Update_MissingStatusFailsValidation(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), NewOrderUsecase(order.NewService(nil, time.Second, nil)))

	rr := httptest.NewRecorder()
	body := `{"date":"2025-01-01","city":"Tunis","client_id":1}`
	h.Update(rr, newRequest(http.MethodPut, "/orders/3", body, map[string]string{"id": "3"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_Delete(t *testing.T) {
	t.Parallel()

	deleted := int64(0)
	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		deleteFn: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	})

	rr := httptest.NewRecorder()
	h.Delete(rr, newRequest(http.MethodDelete, "/orders/9", "", map[string]string{"id": "9"}))
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Equal(t, int64(9), deleted)
}

func TestOrderHandler_Assign(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		assignFn: func(_ context.Context, orderID, courierID int64) error {
			if courierID == 404 {
				return apperr.ErrNotFound
			}
			require.Equal(t, int64(5), orderID)
			return nil
		},
	})

	rr := httptest.NewRecorder()
	h.Assign(rr, newRequest(http.MethodPost, "/orders/5/assign", `{"courier_id":2}`, map[string]string{"id": "5"}))
	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[map[string]any](t, rr)
	require.Equal(t, "En cours", body["status"])

	rr = httptest.NewRecorder()
	h.Assign(rr, newRequest(http.MethodPost, "/orders/5/assign", `{"courier_id":404}`, map[string]string{"id": "5"}))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOrderHandler_ChangeStatus(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), &stubOrderUsecase{
		changeStatusFn: func(_ context.Context, _ int64, status domain.OrderStatus) error {
			if !status.Known() {
				return apperr.ErrInvalid
			}
			return nil
		},
	})

	rr := httptest.NewRecorder()
	h.ChangeStatus(rr, newRequest(http.MethodPost, "/orders/5/status", `{"status":"Annulee"}`, map[string]string{"id": "5"}))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ChangeStatus(rr, newRequest(http.MethodPost, "/orders/5/status", `{"status":"Lost"}`, map[string]string{"id": "5"}))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOrderHandler_ReadOnlyEndpoints(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), statsOrderUsecase{})

	rr := httptest.NewRecorder()
	h.Overdue(rr, newRequest(http.MethodGet, "/orders/overdue", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, decodeBody[[]orderDTO](t, rr), 1)

	rr = httptest.NewRecorder()
	h.NextID(rr, newRequest(http.MethodGet, "/orders/next-id", "", nil))
	require.Equal(t, int64(12), decodeBody[nextIDResponse](t, rr).NextID)

	rr = httptest.NewRecorder()
	h.StatsByStatus(rr, newRequest(http.MethodGet, "/orders/stats/status", "", nil))
	require.Equal(t, map[string]int{"En attente": 2}, decodeBody[map[string]int](t, rr))

	rr = httptest.NewRecorder()
	h.StatsByCity(rr, newRequest(http.MethodGet, "/orders/stats/city", "", nil))
	require.Equal(t, "{}\n", rr.Body.String())

	rr = httptest.NewRecorder()
	h.AverageDelay(rr, newRequest(http.MethodGet, "/orders/stats/average-delay", "", nil))
	require.Equal(t, 2.5, decodeBody[averageDelayResponse](t, rr).AverageDelayDays)
}

func TestOrderHandler_ReadOnlyEndpoints_InternalError(t *testing.T) {
	t.Parallel()

	h := NewOrderHandler(testLogger(), statsOrderUsecase{err: errors.New("db down")})
	for _, fn := range []http.HandlerFunc{h.Overdue, h.NextID, h.StatsByStatus, h.StatsByCity, h.AverageDelay} {
		rr := httptest.NewRecorder()
		fn(rr, newRequest(http.MethodGet, "/orders/x", "", nil))
		require.Equal(t, http.StatusInternalServerError, rr.Code)
	}
}
