package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"a11yscanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
		serrors.ErrNotImplemented,
		serrors.ErrStorage,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	// Ensure some expected inequalities
	require.NotEqual(t, serrors.ErrNotFound, serrors.ErrUnauthorized, "NotFound should not equal Unauthorized")
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "scan session %d not found", 42)
	require.Equal(t, "scan session 42 not found", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrNotFound, base, "getting finding")
	require.Equal(t, "getting finding: db down", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestStorageKindDistinctFromNotFound(t *testing.T) {
	e := serrors.Wrap(serrors.ErrStorage, errors.New("connection reset"), "could not insert findings")

	require.ErrorIs(t, e, serrors.ErrStorage)
	require.NotErrorIs(t, e, serrors.ErrNotFound)
	require.Equal(t, "could not insert findings: connection reset", e.Error())
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want serrors.Kind
	}{
		{"nil", nil, nil},
		{"plain error", errors.New("boom"), nil},
		{"direct", serrors.KindOnly(serrors.ErrConflict), serrors.ErrConflict},
		{"wrapped with fmt", fmt.Errorf("ctx: %w", serrors.With(serrors.ErrNotFound, "missing")), serrors.ErrNotFound},
		{"outermost wins", serrors.Wrap(serrors.ErrStorage, serrors.KindOnly(serrors.ErrNotFound), "load"), serrors.ErrStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.KindOf(tt.err))
		})
	}
}

func TestPermanent(t *testing.T) {
	require.True(t, serrors.Permanent(serrors.KindOnly(serrors.ErrNotFound)))
	require.True(t, serrors.Permanent(fmt.Errorf("job: %w", serrors.With(serrors.ErrBadRequest, "bad"))))
	require.False(t, serrors.Permanent(serrors.KindOnly(serrors.ErrRateLimited)))
	require.False(t, serrors.Permanent(serrors.KindOnly(serrors.ErrStorage)))
	require.False(t, serrors.Permanent(errors.New("boom")))
}
