package kafka

import (
	"fmt"
	"strings"
	"time"

	"logistics-dispatch/internal/service/dispatch"
)

const dateLayout = "2006-01-02"

// EventDTO is the wire form of dispatch.Event.
type EventDTO struct {
	OrderID  int64  `json:"order_id"`
	Status   string `json:"status"`
	City     string `json:"city,omitempty"`
	ClientID int64  `json:"client_id,omitempty"`
	Date     string `json:"date,omitempty"`
}

// ToDomain converts EventDTO to dispatch.Event. A malformed date is a permanent error.
func ToDomain(dto EventDTO) (dispatch.Event, error) {
	ev := dispatch.Event{
		OrderID:  dto.OrderID,
		Status:   strings.TrimSpace(dto.Status),
		City:     strings.TrimSpace(dto.City),
		ClientID: dto.ClientID,
	}
	if d := strings.TrimSpace(dto.Date); d != "" {
		t, err := time.Parse(dateLayout, d)
		if err != nil {
			return dispatch.Event{}, Permanent(fmt.Errorf("event date %q: %w", dto.Date, err))
		}
		ev.Date = t
	}
	return ev, nil
}

// needsOrderID reports whether the event refers to an existing order.
func needsOrderID(status string) bool {
	return !strings.EqualFold(strings.TrimSpace(status), "created")
}
