package coerce

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestResult(t *testing.T) {
	ok := success(42)
	assert.True(t, ok.Ok())
	assert.Nil(t, ok.Err())
	assert.Equal(t, 42, ok.Value)
	assert.Empty(t, ok.Error)

	failed := failure(errors.New("boom"))
	assert.False(t, failed.Ok())
	assert.Nil(t, failed.Value)
	assert.EqualError(t, failed.Err(), "boom")
}
