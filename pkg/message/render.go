package message

import (
	"fmt"

	"github.com/svavnc/concierge/pkg/catalog"
	"github.com/svavnc/concierge/pkg/overlay"
)

// BlockKind distinguishes the renderable block variants.
type BlockKind string

const (
	BlockText BlockKind = "text"

	// BlockFigure is an annotated equipment figure.
	BlockFigure BlockKind = "figure"

	// BlockPlaceholder marks an equipment reference whose id is not in the
	// catalog. It stays visible so a bad assistant-generated tag can be
	// diagnosed instead of silently disappearing.
	BlockPlaceholder BlockKind = "placeholder"
)

// Block is one renderable unit of an assistant chat bubble.
type Block struct {
	Kind   BlockKind           `json:"kind"`
	Text   string              `json:"text,omitempty"`
	Figure *overlay.Composition `json:"figure,omitempty"`
}

// Render turns assistant text into the ordered blocks a chat bubble shows:
// prose, annotated equipment figures, and visible placeholders for
// unresolvable equipment ids.
func Render(text string, cat *catalog.Catalog) []Block {
	segments := Parse(text)
	blocks := make([]Block, 0, len(segments))

	for _, seg := range segments {
		switch seg.Kind {
		case SegmentText:
			blocks = append(blocks, Block{Kind: BlockText, Text: seg.Text})
		case SegmentEquipment:
			record, ok := cat.Lookup(seg.EquipmentID)
			if !ok {
				blocks = append(blocks, Block{
					Kind: BlockPlaceholder,
					Text: fmt.Sprintf("[Equipment image not found: %s]", seg.EquipmentID),
				})
				continue
			}
			comp := overlay.Render(record.ImageURL, cat.Annotations(seg.EquipmentID, seg.Selector), record.Caption)
			blocks = append(blocks, Block{Kind: BlockFigure, Figure: &comp})
		}
	}

	return blocks
}
