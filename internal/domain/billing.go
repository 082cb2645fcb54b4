package domain

import (
	"time"

	"github.com/m04kA/DWS-ScheduleService/pkg/types"
)

// BillableStatus status of a billable line in the external ledger
type BillableStatus string

const (
	BillableDone BillableStatus = "done"
)

// BillableRecord is one billable line produced for a synced assignment
// The natural key (dog id, service date, start time) carries the at-most-once
// guarantee: the bridge looks it up before inserting
type BillableRecord struct {
	ID int64

	// ExternalRef stable reference handed to the invoicing collaborator
	ExternalRef string

	DogID   int64
	OwnerID int64

	ServiceCategory string
	ServiceDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	UnitPrice       float64
	Quantity        int

	Status BillableStatus

	// Provenance references the slot id and week the line was produced from
	Provenance string

	CreatedAt time.Time
}

// BillingKey is the natural idempotency key of a billable record
type BillingKey struct {
	DogID       int64
	ServiceDate time.Time
	StartTime   types.TimeString
}

// Key returns the natural key of the record
func (r *BillableRecord) Key() BillingKey {
	return BillingKey{DogID: r.DogID, ServiceDate: r.ServiceDate, StartTime: r.StartTime}
}
