package dispatch

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onCreated, onDelivered, onCancelled, onLate actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"created":   onCreated,
			"delivered": onDelivered,
			"completed": onDelivered,
			"cancelled": onCancelled,
			"canceled":  onCancelled,
			"late":      onLate,
		},
	}
}

// normalizeStatus lowercases and trims an event status.
func normalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	fn, ok := f.byStatus[normalizeStatus(status)]
	return fn, ok
}
