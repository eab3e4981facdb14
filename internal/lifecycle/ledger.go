package lifecycle

import "avdportal/internal/model"

// WriteResult is returned by the best-effort ledger writers. A failed write
// has already been logged; callers either inspect it or drop it with `_ =`.
type WriteResult struct {
	err error
}

// Written is the result of a successful ledger write.
func Written() WriteResult { return WriteResult{} }

// Failed wraps the error of a ledger write that did not persist.
func Failed(err error) WriteResult { return WriteResult{err: err} }

// OK reports whether the entry was persisted.
func (r WriteResult) OK() bool { return r.err == nil }

// Err returns the write error, nil when OK.
func (r WriteResult) Err() error { return r.err }

// HistoryEvent is one change ledger entry before it is stamped with the
// acting user and creation time.
type HistoryEvent struct {
	TemplateID int64
	Action     model.HistoryAction
	OldStatus  *model.TemplateStatus
	NewStatus  *model.TemplateStatus
	Changes    *model.Payload
	Comment    string
}

// StatusChanged builds the STATUS_CHANGED entry for an applied decision.
func StatusChanged(templateID int64, d Decision, changes *model.Payload, comment string) HistoryEvent {
	from, to := d.From, d.To
	return HistoryEvent{
		TemplateID: templateID,
		Action:     model.HistoryActionStatusChanged,
		OldStatus:  &from,
		NewStatus:  &to,
		Changes:    changes,
		Comment:    comment,
	}
}

// AuditEvent is one global audit log entry before it is stamped with the actor.
type AuditEvent struct {
	Action     string
	EntityType string
	EntityID   string
	EntityName string
	Details    *model.Payload
	OldValue   *model.Payload
	NewValue   *model.Payload
}
