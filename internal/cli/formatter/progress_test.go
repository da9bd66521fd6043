package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		dim   bool
	}{
		{"0% normal", 0.0, 10, false},
		{"50% normal", 0.5, 10, false},
		{"100% normal", 1.0, 10, false},
		{"50% dimmed", 0.5, 10, true},
		{"over 100% clamps", 1.5, 10, false},
		{"negative clamps", -0.5, 10, false},
		{"tiny width clamps to 2", 0.5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
		})
	}
}

func TestRenderCompactBarBlocks(t *testing.T) {
	bar0 := stripANSI(RenderCompactBar(0.0, 4, true))
	assert.Equal(t, "░░░░", bar0)

	bar100 := stripANSI(RenderCompactBar(1.0, 4, true))
	assert.Equal(t, "████", bar100)

	half := stripANSI(RenderCompactBar(0.5, 4, false))
	assert.Equal(t, "██░░", half)
}

func TestRenderProgress_ClampsLabel(t *testing.T) {
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(1.7, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderProgress(-1, 10)))
	assert.Equal(t, "[██████░░░░]  65%", stripANSI(RenderProgress(0.65, 10)))
}
