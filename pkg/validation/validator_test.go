package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Username string `json:"username" binding:"required,max=5"`
	Email    string `json:"email" binding:"omitempty,email"`
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()

	var req sampleRequest
	err := binding.JSON.BindBody([]byte(`{"username":"","email":"not-an-email"}`), &req)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, []string{"is required"}, details["username"])
	assert.Equal(t, []string{"must be a valid email"}, details["email"])
}

func TestToDetailsMaxLength(t *testing.T) {
	Init()

	var req sampleRequest
	err := binding.JSON.BindBody([]byte(`{"username":"toolongname"}`), &req)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, []string{"must be at most 5 characters long"}, details["username"])
}

func TestToDetailsMalformedJSON(t *testing.T) {
	var req sampleRequest
	err := binding.JSON.BindBody([]byte(`{"username":`), &req)
	require.Error(t, err)

	details := ToDetails(err)
	assert.Contains(t, details, "payload")
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}
