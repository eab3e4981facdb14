package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrBadRequest))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrTemplateNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(ErrApplicationAlreadyAttached))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}

func TestHandleServiceErrorTransition(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	HandleServiceError(ctx, &TransitionError{From: "DRAFT", To: "APPROVED", Reason: "transition from DRAFT to APPROVED is not allowed"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Code int               `json:"code"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCode(ErrInvalidStatusTransition), resp.Code)
	assert.Equal(t, "DRAFT", resp.Data["from"])
	assert.Contains(t, resp.Data["reason"], "not allowed")
}

func TestHandleServiceErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	HandleServiceError(ctx, assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleCreated(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)

	HandleCreated(ctx, map[string]int{"id": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestErrorTableCodesAreUnique(t *testing.T) {
	seen := map[int]string{}
	for err, code := range errorCodeMap {
		prev, dup := seen[code]
		assert.False(t, dup, "code %d used by %q and %q", code, prev, err.Error())
		seen[code] = err.Error()

		status := HTTPStatus(err)
		assert.True(t, status >= http.StatusOK && status < 600, "status %d for %q", status, err.Error())
	}
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrAccountDisabled))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrWrongPassword))
}
