package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}

	assert.False(t, Status("DONE").IsValid())
	assert.False(t, Status("pending").IsValid(), "statuses are uppercase only")
	assert.False(t, Status("").IsValid())
}
