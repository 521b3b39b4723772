package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	a := MustParse("0190f5a2-0000-7000-8000-000000000001")
	b := MustParse("0190f5a2-0000-7000-8000-000000000002")

	got := Unique([]ID{b, a, b, {}, a})

	assert.Equal(t, []ID{b, a}, got)
}

func TestNew_IsVersion7(t *testing.T) {
	v := New()
	assert.False(t, IsNil(v))
	assert.EqualValues(t, 7, v.Version())
}
