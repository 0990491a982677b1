package domain

import (
	"strings"
	"time"
)

// OverdueAfterDays is the age after which an in-progress order is considered late.
const OverdueAfterDays = 7

// Order represents one delivery request.
type Order struct {
	ID        int64
	Date      time.Time
	Status    OrderStatus
	City      string
	ClientID  int64
	CourierID int64 // 0 means unassigned
}

// NewOrder returns a pending, unassigned order dated on the day of now.
func NewOrder(now time.Time, city string, clientID int64) Order {
	return Order{
		Date:     DateOf(now),
		Status:   StatusPending,
		City:     city,
		ClientID: clientID,
	}
}

// Valid reports whether the order satisfies its invariant.
func (o Order) Valid() bool {
	return o.ClientID > 0 &&
		strings.TrimSpace(o.City) != "" &&
		strings.TrimSpace(string(o.Status)) != "" &&
		!o.Date.IsZero()
}

// Equal compares orders by identifier.
func (o Order) Equal(other Order) bool {
	return o.ID == other.ID
}

// Assigned reports whether a courier references this order.
func (o Order) Assigned() bool {
	return o.CourierID > 0
}

// OrderFilter carries optional search criteria. Zero values mean "no filter".
type OrderFilter struct {
	Status OrderStatus
	City   string
	From   time.Time
	To     time.Time
}

// Empty reports whether no criterion is set.
func (f OrderFilter) Empty() bool {
	return f.Status == "" && f.City == "" && f.From.IsZero() && f.To.IsZero()
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}
