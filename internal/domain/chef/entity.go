package chef

import (
	"time"

	"github.com/google/uuid"
)

// Chef carries only what the order core needs: the break flag that halts new
// bookings and triggers the cancellation cascade. Profile data lives elsewhere.
type Chef struct {
	id          uuid.UUID
	onBreak     bool
	breakReason *string
	breakSince  *time.Time
}

func ReconstructChef(id uuid.UUID, onBreak bool, breakReason *string, breakSince *time.Time) *Chef {
	return &Chef{
		id:          id,
		onBreak:     onBreak,
		breakReason: breakReason,
		breakSince:  breakSince,
	}
}

// StartBreak is idempotent; re-entering break mode updates the reason. A
// repeated cascade is harmless because cancelled orders drop out of the
// upcoming list.
func (c *Chef) StartBreak(reason string, now time.Time) {
	c.onBreak = true
	c.breakReason = &reason
	c.breakSince = &now
}

// EndBreak clears the flag only. Cancelled orders stay cancelled.
func (c *Chef) EndBreak() {
	c.onBreak = false
	c.breakReason = nil
	c.breakSince = nil
}

func (c *Chef) ID() uuid.UUID          { return c.id }
func (c *Chef) OnBreak() bool          { return c.onBreak }
func (c *Chef) BreakReason() *string   { return c.breakReason }
func (c *Chef) BreakSince() *time.Time { return c.breakSince }
