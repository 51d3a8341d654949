//go:build unit || e2e

package testutil

import (
	"fmt"
	"testing"

	"hotel-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorIs checks target against err with errs.Is, which also sees marks added by errs.Mark.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Fail(t, notInChain(err, target), msgAndArgs...)
}

func RequireErrorIs(t *testing.T, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errs.Is(err, target) {
		require.FailNow(t, notInChain(err, target), msgAndArgs...)
	}
}

func notInChain(err, target error) string {
	return fmt.Sprintf("target error is not in err chain\nexpected: %v\nactual:   %v", target, err)
}
