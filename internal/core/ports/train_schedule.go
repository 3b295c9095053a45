package ports

import (
	"context"
	"time"
)

// TrainSchedule is the read-only delivery detail for the train an order
// belongs to: when it reaches the outlet's station and how long it halts.
type TrainSchedule struct {
	TrainNumber string
	TrainName   string
	StationCode string
	ArrivesAt   time.Time
	DepartsAt   time.Time
	PlatformNo  string
}

// TrainScheduleProvider looks up train arrival details for an order's
// delivery station. Purely informational; a lookup failure never blocks the
// status workflow.
type TrainScheduleProvider interface {
	GetSchedule(ctx context.Context, trainNumber, stationCode string) (TrainSchedule, error)
}
