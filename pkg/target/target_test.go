package target_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/williamokano/site_deployer/pkg/target"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  target.Target
	}{
		{name: "development", input: "development", want: target.Development},
		{name: "staging", input: "staging", want: target.Staging},
		{name: "production", input: "production", want: target.Production},
		{name: "empty", input: "", want: target.Unknown},
		{name: "typo", input: "prodution", want: target.Unknown},
		{name: "case sensitive", input: "Production", want: target.Unknown},
		{name: "surrounding whitespace", input: " staging ", want: target.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, target.Parse(tt.input))
		})
	}
}

func TestTarget_StringRoundTrip(t *testing.T) {
	for _, tg := range target.All() {
		assert.True(t, tg.Known())
		assert.Equal(t, tg, target.Parse(tg.String()))
	}

	assert.False(t, target.Unknown.Known())
	assert.Equal(t, "unknown", target.Unknown.String())
	assert.Equal(t, "unknown", target.Target(42).String())
}

func TestAll(t *testing.T) {
	assert.Equal(t, []target.Target{target.Development, target.Staging, target.Production}, target.All())
}
