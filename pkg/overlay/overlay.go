// Package overlay renders annotation primitives into an SVG layer placed
// over an equipment photo. The overlay always uses a 0-100 x 0-100
// coordinate space stretched across the image's bounding box, so annotation
// positions are independent of the photo's native resolution.
package overlay

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/svavnc/concierge/pkg/catalog"
)

// DefaultColor is the brand teal used when an annotation has no color of
// its own.
const DefaultColor = "#00B4A0"

// Geometry shared by all label tags: width grows with the label text.
const (
	tagWidthPerChar = 2.5
	tagWidthPad     = 2
	tagHeight       = 6
	labelFontSize   = 3
)

// Composition is a rendered equipment figure: the base photo, the SVG
// overlay drawn on top of it, and the caption shown underneath.
type Composition struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	SVG      string `json:"svg"`

	// Primitives counts the annotations actually drawn; undrawable ones
	// are skipped rather than failing the whole figure.
	Primitives int `json:"primitives"`
}

// Render composes the overlay for one equipment figure. It is a pure
// function of its inputs: an empty annotation list yields the base image
// with an empty overlay, and malformed annotations render nothing.
func Render(imageURL string, annotations []catalog.Annotation, caption string) Composition {
	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 100 100" preserveAspectRatio="none" xmlns="http://www.w3.org/2000/svg">`)

	drawn := 0
	for _, a := range annotations {
		if !a.Valid() && a.Kind != catalog.KindLabel {
			continue
		}
		color := a.Color
		if color == "" {
			color = DefaultColor
		}
		switch a.Kind {
		case catalog.KindCircle:
			drawCircle(&b, a, color)
		case catalog.KindArrow:
			drawArrow(&b, a, color)
		case catalog.KindLabel:
			// A label with empty text still renders a near-zero-width tag.
			if !inRange(a.X) || !inRange(a.Y) {
				continue
			}
			drawLabel(&b, a, color)
		default:
			continue
		}
		drawn++
	}

	b.WriteString(`</svg>`)

	return Composition{
		ImageURL:   imageURL,
		Caption:    caption,
		SVG:        b.String(),
		Primitives: drawn,
	}
}

func inRange(v float64) bool { return v >= 0 && v <= 100 }

func drawCircle(b *strings.Builder, a catalog.Annotation, color string) {
	b.WriteString(`<g>`)
	// Expanding pulse ring, purely cosmetic.
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="6" fill="none" stroke="%s" stroke-width="0.5" opacity="0.5">`+
		`<animate attributeName="r" values="4;8;4" dur="1.5s" repeatCount="indefinite"/>`+
		`</circle>`,
		num(a.X), num(a.Y), color)
	// Static ring marking the feature.
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="4" fill="none" stroke="%s" stroke-width="1"/>`,
		num(a.X), num(a.Y), color)
	if a.Label != "" {
		drawTag(b, a.X+5, a.Y-3, a.X+6, a.Y+1, a.Label, "white", 0.75)
	}
	b.WriteString(`</g>`)
}

func drawArrow(b *strings.Builder, a catalog.Annotation, color string) {
	toX, toY := *a.ToX, *a.ToY
	angle := math.Atan2(toY-a.Y, toX-a.X) * 180 / math.Pi

	b.WriteString(`<g>`)
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`,
		num(a.X), num(a.Y), num(toX), num(toY), color)
	fmt.Fprintf(b, `<polygon points="%s,%s %s,%s %s,%s" fill="%s" transform="rotate(%s, %s, %s)"/>`,
		num(toX), num(toY),
		num(toX-3), num(toY-1.5),
		num(toX-3), num(toY+1.5),
		color, num(angle), num(toX), num(toY))
	if a.Label != "" {
		w := tagTextWidth(a.Label)
		drawTag(b, a.X-w/2-1, a.Y-4, a.X-w/2, a.Y, a.Label, "white", 0.75)
	}
	b.WriteString(`</g>`)
}

func drawLabel(b *strings.Builder, a catalog.Annotation, color string) {
	w := tagTextWidth(a.Label)
	b.WriteString(`<g>`)
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%d" fill="rgba(0,0,0,0.85)" rx="1"/>`,
		num(a.X-w/2), num(a.Y-3), num(w+tagWidthPad), tagHeight)
	fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-size="%d" font-weight="bold">%s</text>`,
		num(a.X-w/2+1), num(a.Y+1), color, labelFontSize, html.EscapeString(a.Label))
	b.WriteString(`</g>`)
}

// drawTag draws the filled background rectangle and label text used by
// circle and arrow annotations.
func drawTag(b *strings.Builder, rectX, rectY, textX, textY float64, label, textColor string, alpha float64) {
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%d" fill="rgba(0,0,0,%s)" rx="1"/>`,
		num(rectX), num(rectY), num(tagTextWidth(label)+tagWidthPad), tagHeight, num(alpha))
	fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-size="%d" font-weight="bold">%s</text>`,
		num(textX), num(textY), textColor, labelFontSize, html.EscapeString(label))
}

// tagTextWidth sizes a label tag proportionally to its character count.
func tagTextWidth(label string) float64 {
	return tagWidthPerChar * float64(len([]rune(label)))
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
