package breakpoints_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/gridlist/breakpoints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ColumnRules(t *testing.T) {
	rs, err := breakpoints.Parse(`
# columns by container width
>= 1200 => 4
>= 900  => 3
default => per 300
`)
	require.NoError(t, err)
	require.Len(t, rs.Rules(), 3)

	tests := []struct {
		width float64
		want  int
	}{
		{1600, 4},
		{1200, 4},
		{1199, 3},
		{900, 3},
		{899, 2},
		{600, 2},
		{599, 1},
		{120, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rs.Int(tt.width), "width %v", tt.width)
	}
}

func TestParse_SemicolonSeparated(t *testing.T) {
	rs, err := breakpoints.Parse(`< 600 => 8px; < 1000 => 12; default => 2%`)
	require.NoError(t, err)

	assert.Equal(t, 8.0, rs.Float(400))
	assert.Equal(t, 12.0, rs.Float(800))
	assert.InDelta(t, 30.0, rs.Float(1500), 1e-9)
	assert.Equal(t, "< 600 => 8px; < 1000 => 12; default => 2%", rs.String())
}

func TestEval_NoMatch(t *testing.T) {
	rs := breakpoints.MustParse(`> 500 => 2`)

	_, err := rs.Eval(100)
	require.Error(t, err)
	assert.True(t, errors.Is(err, breakpoints.ErrNoMatch))
	assert.Equal(t, 0, rs.Int(100))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"only comments", "# nothing here\n"},
		{"missing arrow", ">= 10 4"},
		{"percent guard", ">= 50% => 2"},
		{"zero per", "default => per 0"},
		{"rule after default", "default => 1; >= 10 => 2"},
		{"unknown token", ">= 10 => four"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := breakpoints.Parse(tt.src)
			require.Error(t, err)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { breakpoints.MustParse("=> 3") })
}

func TestPer_NeverBelowOne(t *testing.T) {
	rs := breakpoints.MustParse("default => per 250")
	assert.Equal(t, 1, rs.Int(0))
	assert.Equal(t, 1, rs.Int(249))
	assert.Equal(t, 4, rs.Int(1000))
}
