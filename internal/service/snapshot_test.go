package service

import (
	"testing"

	"avdportal/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffPayloads(t *testing.T) {
	contact := int64(4)
	before := &model.Template{
		Name:          "finance",
		Environment:   model.EnvironmentPilot,
		Regions:       []string{"westeurope"},
		PrimaryRegion: "westeurope",
	}
	after := *before
	after.Name = "finance-v2"
	after.ContactID = &contact
	after.Regions = []string{"westeurope", "northeurope"}

	changes, oldValues, newValues := diffPayloads(templateSnapshot(before), templateSnapshot(&after))

	assert.Equal(t, []string{"name", "contact_id", "regions"}, changes.Keys())
	assert.Equal(t, changes.Keys(), oldValues.Keys())
	assert.Equal(t, changes.Keys(), newValues.Keys())

	nameDiff, ok := changes.Get("name")
	require.True(t, ok)
	m, ok := nameDiff.Map()
	require.True(t, ok)
	ov, _ := m.Get("old")
	nv, _ := m.Get("new")
	s, _ := ov.Str()
	assert.Equal(t, "finance", s)
	s, _ = nv.Str()
	assert.Equal(t, "finance-v2", s)

	cv, _ := oldValues.Get("contact_id")
	assert.True(t, cv.IsNull())
	cv, _ = newValues.Get("contact_id")
	n, _ := cv.Num()
	assert.Equal(t, float64(4), n)
}

func TestDiffPayloads_NoChange(t *testing.T) {
	tpl := &model.Template{Name: "same", Regions: []string{"eastus"}, PrimaryRegion: "eastus"}
	changes, _, _ := diffPayloads(templateSnapshot(tpl), templateSnapshot(tpl))
	assert.Equal(t, 0, changes.Len())
}
