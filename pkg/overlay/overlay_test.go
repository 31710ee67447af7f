package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svavnc/concierge/pkg/catalog"
)

func ptr(v float64) *float64 { return &v }

func TestRenderEmptyAnnotations(t *testing.T) {
	comp := Render("/equipment/araknis-router.svg", nil, "Araknis Router")

	assert.Equal(t, "/equipment/araknis-router.svg", comp.ImageURL)
	assert.Equal(t, "Araknis Router", comp.Caption)
	assert.Equal(t, 0, comp.Primitives)
	assert.True(t, strings.HasPrefix(comp.SVG, `<svg viewBox="0 0 100 100"`))
	assert.NotContains(t, comp.SVG, "<g>")
}

func TestRenderCircle(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindCircle, X: 15, Y: 25, Label: "Power LED"},
	}
	comp := Render("/img.png", ann, "")

	assert.Equal(t, 1, comp.Primitives)
	// Pulse ring and static ring are concentric at the anchor.
	assert.Equal(t, 2, strings.Count(comp.SVG, `cx="15" cy="25"`))
	assert.Contains(t, comp.SVG, `r="6"`)
	assert.Contains(t, comp.SVG, `r="4"`)
	assert.Contains(t, comp.SVG, `opacity="0.5"`)
	assert.Contains(t, comp.SVG, "Power LED")
	// No explicit color falls back to the brand teal.
	assert.Contains(t, comp.SVG, DefaultColor)
}

func TestRenderCircleWithoutLabel(t *testing.T) {
	ann := []catalog.Annotation{{Kind: catalog.KindCircle, X: 50, Y: 50}}
	comp := Render("/img.png", ann, "")

	assert.Equal(t, 1, comp.Primitives)
	assert.NotContains(t, comp.SVG, "<rect")
	assert.NotContains(t, comp.SVG, "<text")
}

func TestRenderArrow(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindArrow, X: 85, Y: 15, ToX: ptr(92.0), ToY: ptr(50.0), Label: "Reset Button", Color: "#EF4444"},
	}
	comp := Render("/img.png", ann, "")

	assert.Equal(t, 1, comp.Primitives)
	assert.Contains(t, comp.SVG, `<line x1="85" y1="15" x2="92" y2="50"`)
	assert.Contains(t, comp.SVG, "<polygon")
	// atan2(35, 7) in degrees.
	assert.Contains(t, comp.SVG, `rotate(78.69, 92, 50)`)
	assert.Contains(t, comp.SVG, "#EF4444")
	assert.NotContains(t, comp.SVG, DefaultColor)
}

func TestRenderArrowMissingTargetSkipped(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindArrow, X: 85, Y: 15, Label: "broken"},
		{Kind: catalog.KindCircle, X: 10, Y: 10},
	}
	comp := Render("/img.png", ann, "")

	// The malformed arrow renders nothing; the circle still draws.
	assert.Equal(t, 1, comp.Primitives)
	assert.NotContains(t, comp.SVG, "<line")
	assert.NotContains(t, comp.SVG, "broken")
}

func TestRenderLabel(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindLabel, X: 50, Y: 70, Label: "Port LEDs: Green=Link", Color: "#00B4A0"},
	}
	comp := Render("/img.png", ann, "")

	assert.Equal(t, 1, comp.Primitives)
	assert.Contains(t, comp.SVG, `fill="rgba(0,0,0,0.85)"`)
	// Label text is escaped for SVG.
	assert.Contains(t, comp.SVG, "Port LEDs: Green=Link")
}

func TestRenderLabelEmptyText(t *testing.T) {
	ann := []catalog.Annotation{{Kind: catalog.KindLabel, X: 50, Y: 50}}
	comp := Render("/img.png", ann, "")

	// Near-zero-width tag, no panic.
	assert.Equal(t, 1, comp.Primitives)
	assert.Contains(t, comp.SVG, `width="2"`)
}

func TestRenderLabelEscapesMarkup(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindLabel, X: 50, Y: 95, Label: "Reboot via Settings > Advanced"},
	}
	comp := Render("/img.png", ann, "")

	assert.Contains(t, comp.SVG, "Settings &gt; Advanced")
	assert.NotContains(t, comp.SVG, "Settings > Advanced")
}

func TestRenderTagWidthTracksLabelLength(t *testing.T) {
	short := Render("/img.png", []catalog.Annotation{
		{Kind: catalog.KindCircle, X: 10, Y: 10, Label: "ab"},
	}, "")
	long := Render("/img.png", []catalog.Annotation{
		{Kind: catalog.KindCircle, X: 10, Y: 10, Label: "abcdefgh"},
	}, "")

	// width = 2.5*len + 2
	assert.Contains(t, short.SVG, `width="7"`)
	assert.Contains(t, long.SVG, `width="22"`)
}

func TestRenderOutOfRangeCoordinatesSkipped(t *testing.T) {
	ann := []catalog.Annotation{
		{Kind: catalog.KindCircle, X: 150, Y: 10},
		{Kind: catalog.KindLabel, X: -5, Y: 10, Label: "x"},
	}
	comp := Render("/img.png", ann, "")
	assert.Equal(t, 0, comp.Primitives)
}

func TestRenderFullEquipment(t *testing.T) {
	c := catalog.Default()
	r, ok := c.Lookup("araknis-router")
	require.True(t, ok)

	all := c.Annotations("araknis-router", catalog.SelectorAll)
	comp := Render(r.ImageURL, all, r.Caption)

	assert.Equal(t, len(all), comp.Primitives)
	assert.Equal(t, r.Caption, comp.Caption)
	assert.True(t, strings.HasSuffix(comp.SVG, "</svg>"))
}
