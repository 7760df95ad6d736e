package testutils

import (
	"testing"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func MustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

// IgnoreErr is meant for deferred cleanups whose failure should not fail the test.
func IgnoreErr(tb testing.TB, err error) {
	if err != nil {
		tb.Logf("Error ignored: %v", err)
	}
}
