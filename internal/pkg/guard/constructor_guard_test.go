package guard_test

import (
	"errors"
	"testing"

	"parceltrack/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Zone must be created via NewZone constructor")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded mirrors how command objects embed the guard.
func TestConstructorGuardEmbedded(t *testing.T) {
	errLabelNotConstructed := errors.New("label must be created via newLabel")

	type label struct {
		text  string
		guard guard.ConstructorGuard
	}

	newLabel := func(text string) (label, error) {
		if text == "" {
			return label{}, errors.New("text is required")
		}
		return label{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		l, err := newLabel("FRAGILE")

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLabelNotConstructed))
		assert.Equal(t, "FRAGILE", l.text)
	})

	t.Run("struct_literal_is_rejected", func(t *testing.T) {
		l := label{text: "FRAGILE"}

		assert.Equal(t, errLabelNotConstructed, l.guard.Validate(errLabelNotConstructed))
	})

	t.Run("copies_keep_their_state", func(t *testing.T) {
		l, _ := newLabel("URGENT")
		cp := l

		require.NoError(t, cp.guard.Validate(errLabelNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}
	for range 50 {
		<-done
	}
}
