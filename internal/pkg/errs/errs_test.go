//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"lunchbox/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("resource not found")

	t.Run("matches a marked error", func(t *testing.T) {
		cause := errs.New("row missing in storage")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		// The mark is invisible to the standard library matcher.
		assert.False(t, errors.Is(marked, sentinel))
	})

	t.Run("matches a wrapped mark", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("boom"), sentinel), "loading resource")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("matches the sentinel itself", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
		assert.True(t, errs.Is(fmt.Errorf("outer: %w", sentinel), sentinel))
	})

	t.Run("rejects unrelated errors", func(t *testing.T) {
		other := errs.New("conflict")
		assert.False(t, errs.Is(errs.Mark(errs.New("boom"), other), sentinel))
		assert.False(t, errs.Is(nil, sentinel))
	})
}

func TestMarkNilCause(t *testing.T) {
	sentinel := errs.New("not found")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
