// Package lifecycle holds the template status state machine.
//
// Both rule sets are plain data: transitions maps a status to the statuses it
// may move to, dateStamps maps a target status to the lifecycle date it sets.
// Decide never touches storage; callers apply the stamp and persist.
package lifecycle

import (
	"fmt"
	"time"

	"avdportal/internal/model"
)

// DateField names a template lifecycle date column.
type DateField string

const (
	DateNone       DateField = ""
	DateApproved   DateField = "approved_date"
	DateDeployed   DateField = "deployed_date"
	DateDeprecated DateField = "deprecated_date"
)

var transitions = map[model.TemplateStatus][]model.TemplateStatus{
	model.TemplateStatusDraft:      {model.TemplateStatusInReview},
	model.TemplateStatusInReview:   {model.TemplateStatusApproved, model.TemplateStatusDraft},
	model.TemplateStatusApproved:   {model.TemplateStatusDeployed, model.TemplateStatusInReview},
	model.TemplateStatusDeployed:   {model.TemplateStatusDeprecated},
	model.TemplateStatusDeprecated: {},
}

var dateStamps = map[model.TemplateStatus]DateField{
	model.TemplateStatusApproved:   DateApproved,
	model.TemplateStatusDeployed:   DateDeployed,
	model.TemplateStatusDeprecated: DateDeprecated,
}

// InitialStatus is the only status a template is created in.
const InitialStatus = model.TemplateStatusDraft

// Decision is the outcome of a transition request.
type Decision struct {
	From    model.TemplateStatus
	To      model.TemplateStatus
	Allowed bool
	Stamp   DateField
	Reason  string
}

// Decide checks a requested status change against the transition table.
func Decide(from, to model.TemplateStatus) Decision {
	d := Decision{From: from, To: to}
	switch {
	case !from.Valid():
		d.Reason = fmt.Sprintf("unknown current status %q", from)
	case !to.Valid():
		d.Reason = fmt.Sprintf("unknown target status %q", to)
	case from == to:
		d.Reason = fmt.Sprintf("template is already %s", from)
	case IsTerminal(from):
		d.Reason = fmt.Sprintf("%s is a terminal status", from)
	case !allowed(from, to):
		d.Reason = fmt.Sprintf("transition from %s to %s is not allowed", from, to)
	default:
		d.Allowed = true
		d.Stamp = dateStamps[to]
	}
	return d
}

// AllowedTargets returns the statuses reachable in one step, in table order.
func AllowedTargets(from model.TemplateStatus) []model.TemplateStatus {
	next := transitions[from]
	out := make([]model.TemplateStatus, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func IsTerminal(s model.TemplateStatus) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

func allowed(from, to model.TemplateStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyStamp sets the decision's date on tpl if that date is still unset.
// Earlier dates are never cleared, including on backward transitions.
// Reports whether a date was written.
func (d Decision) ApplyStamp(tpl *model.Template, now time.Time) bool {
	if !d.Allowed || d.Stamp == DateNone {
		return false
	}
	var target **time.Time
	switch d.Stamp {
	case DateApproved:
		target = &tpl.ApprovedDate
	case DateDeployed:
		target = &tpl.DeployedDate
	case DateDeprecated:
		target = &tpl.DeprecatedDate
	default:
		return false
	}
	if *target != nil {
		return false
	}
	ts := now
	*target = &ts
	return true
}
