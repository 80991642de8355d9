package domain

import "time"

// BriefingUpdate is one status-change and/or unarchive request.
type BriefingUpdate struct {
	Status    *Status
	Unarchive bool
}

// Validate rejects an update that would do nothing.
func (u BriefingUpdate) Validate() error {
	if u.Status == nil && !u.Unarchive {
		return ErrEmptyUpdate
	}
	return nil
}

// Apply mutates b in place. An explicit status always wins over the implicit
// DONE -> ASSIGNED demotion that unarchiving performs.
func (u BriefingUpdate) Apply(b *Briefing, now time.Time) {
	if u.Status != nil {
		b.Status = *u.Status
		if *u.Status == StatusDone {
			t := now
			b.ArchivedAt = &t
		} else {
			b.ArchivedAt = nil
		}
	}
	if u.Unarchive {
		b.ArchivedAt = nil
		if u.Status == nil && b.Status == StatusDone {
			b.Status = StatusAssigned
		}
	}
	b.UpdatedAt = now
}
