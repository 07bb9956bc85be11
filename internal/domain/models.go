package domain

import (
	"time"

	"github.com/google/uuid"
)

type FlowRateType int

const (
	// Timely funnels fire on their cron schedule.
	Timely FlowRateType = 1
	// Consequent funnels fire in reaction to money arriving on their input side.
	Consequent FlowRateType = 2
)

type FlowType int

const (
	Absolute   FlowType = 1
	Percentage FlowType = 2
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Canvas is a user's top-level ledger namespace. Filled is the balance of its
// main tank; Inflow is injected on every InflowRate tick.
type Canvas struct {
	ID          int       `db:"id"`
	ExternalID  uuid.UUID `db:"external_id"`
	UserID      int       `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Filled      float64   `db:"filled"`
	Inflow      float64   `db:"inflow"`
	InflowRate  string    `db:"inflow_rate"`
	CreatedAt   time.Time `db:"created_at"`
}

// Tank is a capacity-bounded balance bucket within a Canvas. A nil Capacity
// means unbounded.
type Tank struct {
	ID          int       `db:"id"`
	ExternalID  uuid.UUID `db:"external_id"`
	CanvasID    int       `db:"canvas_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Capacity    *float64  `db:"capacity"`
	Color       string    `db:"color"`
	Filled      float64   `db:"filled"`
	CreatedAt   time.Time `db:"created_at"`
}

// Funnel is a transfer rule from an input side (a Tank, or the canvas main
// balance when InTankID is nil) into OutTankID.
type Funnel struct {
	ID           int          `db:"id"`
	ExternalID   uuid.UUID    `db:"external_id"`
	CanvasID     int          `db:"canvas_id"`
	Name         string       `db:"name"`
	FlowRate     string       `db:"flow_rate"`
	FlowRateType FlowRateType `db:"flow_rate_type"`
	Flow         float64      `db:"flow"`
	FlowType     FlowType     `db:"flow_type"`
	InTankID     *int         `db:"in_tank_id"`
	OutTankID    int          `db:"out_tank_id"`
	CreatedAt    time.Time    `db:"created_at"`

	// Tank external ids resolved alongside the row; these address the tanks
	// over the API.
	InTankExternalID  *uuid.UUID `db:"in_tank_external_id"`
	OutTankExternalID uuid.UUID  `db:"out_tank_external_id"`
}

const (
	ReducedOutTankSpace = "out_tank_space"
	ReducedInTankSpace  = "in_tank_space"
)

// FlowMeta annotates a Flow with the originally requested amount and, when
// the amount was clamped, the constraint that produced the final value.
type FlowMeta struct {
	Requested     float64 `json:"requested"`
	Reduced       bool    `json:"reduced"`
	ReducedReason string  `json:"reduced_reason,omitempty"`
}

// Flow is one append-only audit record of a balance movement. FunnelID is nil
// for canvas-level inflow events. Rows are never updated or deleted; the
// newest non-manual row per schedule source doubles as its last-trigger time.
type Flow struct {
	ID         int       `db:"id"`
	ExternalID uuid.UUID `db:"external_id"`
	CanvasID   int       `db:"canvas_id"`
	FunnelID   *int      `db:"funnel_id"`
	Flowed     float64   `db:"flowed"`
	Manual     bool      `db:"manual"`
	Meta       FlowMeta  `db:"meta"`
	CreatedAt  time.Time `db:"created_at"`

	// External id of the funnel, resolved alongside the row; nil for canvas
	// inflow events.
	FunnelExternalID *uuid.UUID `db:"funnel_external_id"`
}
