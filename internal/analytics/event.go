// Package analytics injects the Google Analytics tags into every page and
// forwards page-view events to an explicitly supplied Sink.
package analytics

import (
	"time"

	"github.com/google/uuid"
)

// Command names understood by gtag
const (
	CommandJS     = "js"
	CommandConfig = "config"
)

// Event mirrors one gtag(...) call: gtag(Command, TrackingID, Params)
type Event struct {
	ID         string
	Command    string
	TrackingID string
	Params     map[string]string
	Time       time.Time
}

// PageView builds the config event sent for each navigation
func PageView(trackingID, path string) Event {
	return Event{
		ID:         uuid.NewString(),
		Command:    CommandConfig,
		TrackingID: trackingID,
		Params:     map[string]string{"page_path": path},
		Time:       time.Now(),
	}
}
