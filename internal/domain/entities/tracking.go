package entities

import "time"

// TrackingRetention is applied to every tracking key on every write.
const TrackingRetention = 90 * 24 * time.Hour

const DefaultTrackingEvent = "open"

type TrackingTarget string

const (
	TrackingTargetProposal      TrackingTarget = "proposal"
	TrackingTargetQuestionnaire TrackingTarget = "questionnaire"
	TrackingTargetPortal        TrackingTarget = "portal"
)

func (t TrackingTarget) IsValid() bool {
	return t == TrackingTargetProposal || t == TrackingTargetQuestionnaire || t == TrackingTargetPortal
}

// TrackingEvent is one engagement hit reported by the tracking pixel.
//
// Internal marks hits made by authenticated staff; those are never recorded.
type TrackingEvent struct {
	Type       TrackingTarget `json:"type"`
	ID         string         `json:"id"`
	Event      string         `json:"event"`
	Section    string         `json:"section,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	Referrer   string         `json:"referrer,omitempty"`
	OccurredAt time.Time      `json:"timestamp"`
	Internal   bool           `json:"-"`
}

// CounterField is the aggregate hash field incremented for this event.
func (e TrackingEvent) CounterField() string {
	if e.Section != "" {
		return e.Section + "_" + e.Event + "_count"
	}
	return e.Event + "_count"
}

// TrackingStats is the aggregate hash of one tracked entity.
type TrackingStats struct {
	Type   TrackingTarget    `json:"type"`
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}
