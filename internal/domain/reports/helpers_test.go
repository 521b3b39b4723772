package reports

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"bizreport/internal/core/id"
)

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testID returns a stable id for n, so failures are readable.
func testID(n int) id.ID {
	return id.MustParse(fmt.Sprintf("0190f5a2-0000-7000-8000-%012d", n))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	if !assert.True(t, got.Equal(dec(want)), msgAndArgs...) {
		t.Logf("want %s, got %s", want, got)
	}
}
