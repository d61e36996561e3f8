package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"view3d/transform"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want Op
	}{
		{"rotate-z=90", Op{transform.RotateZ, 90}},
		{"rotate-x=-45.5", Op{transform.RotateX, -45.5}},
		{"move-x=-2", Op{transform.TranslateX, -2}},
		{"move-y=0", Op{transform.TranslateY, 0}},
		{"move-z=1e3", Op{transform.TranslateZ, 1000}},
		{"scale=0.5", Op{transform.Scale, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOpErrors(t *testing.T) {
	for _, in := range []string{"", "rotate-z", "spin=90", "rotate-z=ninety", "=90"} {
		t.Run(in, func(t *testing.T) {
			_, err := parseOp(in)
			assert.Error(t, err)
		})
	}
}

func TestParseOpsKeepsOrder(t *testing.T) {
	ops, err := parseOps([]string{"scale=2", "rotate-y=30", "move-x=1"})
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, transform.Scale, ops[0].Kind)
	assert.Equal(t, transform.RotateY, ops[1].Kind)
	assert.Equal(t, transform.TranslateX, ops[2].Kind)
}

func TestApplyOps(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	points := []transform.Point{transform.Pt(1, 0, 0)}

	ops := []Op{
		{transform.Scale, 2},
		{transform.RotateZ, 90},
		{transform.TranslateZ, 5},
	}
	require.NoError(t, applyOps(logger, points, ops))

	got := points[0]
	assert.InDelta(t, 0, got.X(), 1e-9)
	assert.InDelta(t, 2, got.Y(), 1e-9)
	assert.InDelta(t, 5, got.Z(), 1e-9)
}

func TestApplyOpsWarnsOnZeroScale(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	points := []transform.Point{transform.Pt(1, 2, 3)}
	require.NoError(t, applyOps(logger, points, []Op{{transform.Scale, 0}}))
	assert.Equal(t, transform.Pt(0, 0, 0), points[0])
	assert.Contains(t, buf.String(), "collapses")
}

func TestApplyOpsRejectsUnknownKind(t *testing.T) {
	logger := log.New(&bytes.Buffer{})
	points := []transform.Point{transform.Pt(1, 2, 3)}

	err := applyOps(logger, points, []Op{{transform.Kind(42), 1}})
	require.ErrorIs(t, err, transform.ErrKind)
	assert.Equal(t, transform.Pt(1, 2, 3), points[0])
}
