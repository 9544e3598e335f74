package interval_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Sequences are produced on demand; nothing may run in the background.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
