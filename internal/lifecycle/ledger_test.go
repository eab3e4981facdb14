package lifecycle

import (
	"errors"
	"testing"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestWriteResult(t *testing.T) {
	ok := Written()
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())

	boom := errors.New("insert failed")
	failed := Failed(boom)
	assert.False(t, failed.OK())
	assert.ErrorIs(t, failed.Err(), boom)
}

func TestStatusChanged(t *testing.T) {
	d := Decide(model.TemplateStatusInReview, model.TemplateStatusApproved)
	ev := StatusChanged(7, d, nil, "looks good")

	assert.Equal(t, int64(7), ev.TemplateID)
	assert.Equal(t, model.HistoryActionStatusChanged, ev.Action)
	assert.Equal(t, model.TemplateStatusInReview, *ev.OldStatus)
	assert.Equal(t, model.TemplateStatusApproved, *ev.NewStatus)
	assert.Equal(t, "looks good", ev.Comment)
}
