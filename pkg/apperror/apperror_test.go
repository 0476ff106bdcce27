package apperror

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMatchesSentinelThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading request: %w", NotFound("Request", "id", 42))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsInvalid(err))
	assert.Equal(t, "loading request: Request not found with id: '42'", err.Error())
}

func TestInvalidFormatsReason(t *testing.T) {
	err := Invalidf("Request number already exists: %s", "REQ-1")

	assert.True(t, IsInvalid(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "Request number already exists: REQ-1", err.Error())
}

func TestInvalidKeepsReasonVerbatim(t *testing.T) {
	err := Invalid("100% done")

	assert.Equal(t, "100% done", err.Error())
}
