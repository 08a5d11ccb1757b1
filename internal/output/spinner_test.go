package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NoTTYRunsActionDirectly(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		called = true
		return nil
	}, WithTitle("Activating"), withTTY(func() bool { return false }))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("activation failed")
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		return want
	}, withTTY(func() bool { return false }))

	assert.ErrorIs(t, err, want)
}
