package lifecycle

import (
	"testing"
	"time"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideMatchesTable(t *testing.T) {
	allowedPairs := map[[2]model.TemplateStatus]DateField{
		{model.TemplateStatusDraft, model.TemplateStatusInReview}:      DateNone,
		{model.TemplateStatusInReview, model.TemplateStatusApproved}:   DateApproved,
		{model.TemplateStatusInReview, model.TemplateStatusDraft}:      DateNone,
		{model.TemplateStatusApproved, model.TemplateStatusDeployed}:   DateDeployed,
		{model.TemplateStatusApproved, model.TemplateStatusInReview}:   DateNone,
		{model.TemplateStatusDeployed, model.TemplateStatusDeprecated}: DateDeprecated,
	}

	for _, from := range model.TemplateStatuses {
		for _, to := range model.TemplateStatuses {
			d := Decide(from, to)
			stamp, ok := allowedPairs[[2]model.TemplateStatus{from, to}]
			if ok {
				assert.True(t, d.Allowed, "%s -> %s", from, to)
				assert.Equal(t, stamp, d.Stamp, "%s -> %s", from, to)
				assert.Empty(t, d.Reason)
			} else {
				assert.False(t, d.Allowed, "%s -> %s", from, to)
				assert.NotEmpty(t, d.Reason, "%s -> %s", from, to)
				assert.Equal(t, DateNone, d.Stamp)
			}
		}
	}
}

func TestDecideRejectsSameStatus(t *testing.T) {
	for _, s := range model.TemplateStatuses {
		assert.False(t, Decide(s, s).Allowed, s)
	}
}

func TestDecideRejectsUnknownStatus(t *testing.T) {
	assert.False(t, Decide("ARCHIVED", model.TemplateStatusDraft).Allowed)
	assert.False(t, Decide(model.TemplateStatusDraft, "").Allowed)
}

func TestDeprecatedIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(model.TemplateStatusDeprecated))
	assert.Empty(t, AllowedTargets(model.TemplateStatusDeprecated))
	assert.False(t, IsTerminal(model.TemplateStatusDraft))
}

func TestAllowedTargetsIsACopy(t *testing.T) {
	next := AllowedTargets(model.TemplateStatusInReview)
	require.Len(t, next, 2)
	next[0] = model.TemplateStatusDeprecated
	assert.Equal(t, model.TemplateStatusApproved, AllowedTargets(model.TemplateStatusInReview)[0])
}

func TestApplyStampKeepsFirstApprovalDate(t *testing.T) {
	tpl := &model.Template{Status: model.TemplateStatusInReview}
	first := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	d := Decide(model.TemplateStatusInReview, model.TemplateStatusApproved)
	require.True(t, d.ApplyStamp(tpl, first))
	require.NotNil(t, tpl.ApprovedDate)

	// APPROVED -> IN_REVIEW leaves the date in place
	back := Decide(model.TemplateStatusApproved, model.TemplateStatusInReview)
	assert.False(t, back.ApplyStamp(tpl, first.Add(time.Hour)))
	assert.Equal(t, first, *tpl.ApprovedDate)

	again := Decide(model.TemplateStatusInReview, model.TemplateStatusApproved)
	assert.False(t, again.ApplyStamp(tpl, first.Add(2*time.Hour)))
	assert.Equal(t, first, *tpl.ApprovedDate)
}

func TestApplyStampIgnoresRejectedDecision(t *testing.T) {
	tpl := &model.Template{}
	d := Decide(model.TemplateStatusDraft, model.TemplateStatusDeployed)
	assert.False(t, d.ApplyStamp(tpl, time.Now()))
	assert.Nil(t, tpl.DeployedDate)
}
