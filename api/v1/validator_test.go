package v1

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateTemplateRequest {
	return CreateTemplateRequest{
		Name:           "finance-pooled",
		Environment:    "PILOT",
		BusinessUnitID: 1,
		Regions:        []string{"westeurope", "northeurope"},
		PrimaryRegion:  "northeurope",
	}
}

func TestPrimaryInRegions(t *testing.T) {
	RegisterValidators()

	req := validCreateRequest()
	require.NoError(t, binding.Validator.ValidateStruct(&req))

	req.PrimaryRegion = "eastus"
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, "must be one of the regions", FieldErrors(err)["primary_region"])
}

func TestCreateTemplateRequestRejectsDuplicateRegions(t *testing.T) {
	RegisterValidators()

	req := validCreateRequest()
	req.Regions = []string{"westeurope", "westeurope"}
	req.PrimaryRegion = "westeurope"
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "regions")
}

func TestUpdateTemplateRequestAcceptsZeroReference(t *testing.T) {
	RegisterValidators()

	zero, negative := int64(0), int64(-1)
	req := UpdateTemplateRequest{ContactID: &zero, BaseImageID: &zero}
	require.NoError(t, binding.Validator.ValidateStruct(&req))

	req.ContactID = &negative
	err := binding.Validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "contact_id")
}
