package message

import (
	"regexp"

	"github.com/svavnc/concierge/pkg/catalog"
)

// Equipment reference tags embedded in assistant text look like
// [EQUIPMENT:araknis-router:statusLights] or [EQUIPMENT:araknis-router].
// The selector is optional and defaults to all. Matching is
// case-insensitive, like the tags the assistant actually produces.
var equipmentTagRe = regexp.MustCompile(`(?i)\[EQUIPMENT:([a-z0-9-]+):?(statusLights|resetButton|ports|all)?\]`)

// SegmentKind distinguishes the two segment variants.
type SegmentKind string

const (
	SegmentText      SegmentKind = "text"
	SegmentEquipment SegmentKind = "equipment"
)

// Segment is one piece of a parsed assistant message: either plain text or
// an equipment reference to be rendered as an annotated figure.
type Segment struct {
	Kind SegmentKind `json:"kind"`

	// Text is set for text segments.
	Text string `json:"text,omitempty"`

	// EquipmentID and Selector are set for equipment segments. The id is
	// carried through even when it is unknown to the catalog; resolution
	// is the renderer's job.
	EquipmentID string           `json:"equipmentId,omitempty"`
	Selector    catalog.Selector `json:"selector,omitempty"`
}

// Parse scans assistant text left to right and splits it into an ordered
// sequence of plain-text and equipment-reference segments. Text with no
// tags returns a single text segment holding the whole input, so plain
// prose never touches the catalog.
func Parse(text string) []Segment {
	matches := equipmentTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Kind: SegmentText, Text: text}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Kind: SegmentText, Text: text[last:m[0]]})
		}

		id := text[m[2]:m[3]]
		rawSel := ""
		if m[4] >= 0 {
			rawSel = text[m[4]:m[5]]
		}
		// The regex only admits the four selector keywords, so the parse
		// cannot fail; an omitted selector defaults to all.
		sel, _ := catalog.ParseSelector(rawSel)

		segments = append(segments, Segment{
			Kind:        SegmentEquipment,
			EquipmentID: id,
			Selector:    sel,
		})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Kind: SegmentText, Text: text[last:]})
	}

	return segments
}
