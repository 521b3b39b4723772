package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bizreport/internal/core/id"
)

func TestResolveName(t *testing.T) {
	known := id.MustParse("0190f5a2-0000-7000-8000-00000000000a")
	missing := id.MustParse("0190f5a2-0000-7000-8000-00000000000b")
	lookup := map[id.ID]Client{known: {ID: known, Name: "Ana"}}

	assert.Equal(t, "Ana", ResolveName(lookup, known))
	assert.Equal(t, "Client ID 0190f5a2-0000-7000-8000-00000000000b", ResolveName(lookup, missing))
	assert.Equal(t, "Client ID "+missing.String(), ResolveName(nil, missing))
}
