package dispatch

import (
	"time"
)

// Event is a single order event.
type Event struct {
	OrderID  int64
	Status   string
	City     string
	ClientID int64
	Date     time.Time
}
