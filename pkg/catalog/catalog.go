// Package catalog is the read-only equipment table: every piece of hardware
// the assistant may reference, its base photo, and the annotation sets drawn
// over that photo.
package catalog

import "strings"

// Category classifies a piece of installed equipment.
type Category string

const (
	CategoryRouter      Category = "router"
	CategorySwitch      Category = "switch"
	CategoryModem       Category = "modem"
	CategoryAccessPoint Category = "access-point"
	CategoryController  Category = "controller"
	CategoryCamera      Category = "camera"
	CategoryPanel       Category = "panel"
)

// Kind is the shape of an annotation primitive.
type Kind string

const (
	KindCircle Kind = "circle"
	KindArrow  Kind = "arrow"
	KindLabel  Kind = "label"
)

// Annotation is a positioned marker drawn over an equipment photo.
// X and Y are percentages of the image's bounding box in [0,100];
// the overlay coordinate space never depends on native pixel size.
type Annotation struct {
	Kind Kind `json:"type"`

	X float64 `json:"x"`
	Y float64 `json:"y"`

	// ToX and ToY are the arrow target; nil for circles and labels.
	ToX *float64 `json:"toX,omitempty"`
	ToY *float64 `json:"toY,omitempty"`

	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// Valid reports whether the annotation can be drawn at all: coordinates in
// range, arrows with both endpoints, labels with text.
func (a Annotation) Valid() bool {
	if !inRange(a.X) || !inRange(a.Y) {
		return false
	}
	switch a.Kind {
	case KindCircle:
		return true
	case KindArrow:
		return a.ToX != nil && a.ToY != nil && inRange(*a.ToX) && inRange(*a.ToY)
	case KindLabel:
		return a.Label != ""
	}
	return false
}

func inRange(v float64) bool { return v >= 0 && v <= 100 }

// Selector names the annotation subset to render for a piece of equipment.
type Selector string

const (
	SelectorStatusLights Selector = "statusLights"
	SelectorResetButton  Selector = "resetButton"
	SelectorPorts        Selector = "ports"
	SelectorAll          Selector = "all"
)

// ParseSelector resolves a selector keyword case-insensitively.
// The empty string means the tag omitted the selector and defaults to all.
func ParseSelector(s string) (Selector, bool) {
	switch strings.ToLower(s) {
	case "":
		return SelectorAll, true
	case "statuslights":
		return SelectorStatusLights, true
	case "resetbutton":
		return SelectorResetButton, true
	case "ports":
		return SelectorPorts, true
	case "all":
		return SelectorAll, true
	}
	return "", false
}

// EquipmentRecord describes one supported device and its annotated photo.
type EquipmentRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Brand    string   `json:"brand"`
	ImageURL string   `json:"imageUrl"`
	Caption  string   `json:"caption"`

	StatusLights []Annotation `json:"statusLights"`
	ResetButton  []Annotation `json:"resetButton"`
	Ports        []Annotation `json:"ports"`
}

// Catalog is an immutable lookup table of equipment records. Build it once
// at startup and share it; all methods are safe for concurrent readers.
type Catalog struct {
	records map[string]EquipmentRecord
	order   []string
}

// New builds a catalog from the given records. Later records with a
// duplicate ID replace earlier ones.
func New(records ...EquipmentRecord) *Catalog {
	c := &Catalog{records: make(map[string]EquipmentRecord, len(records))}
	for _, r := range records {
		if _, dup := c.records[r.ID]; !dup {
			c.order = append(c.order, r.ID)
		}
		c.records[r.ID] = r
	}
	return c
}

// Lookup returns the record for id, or false when the id is unknown.
func (c *Catalog) Lookup(id string) (EquipmentRecord, bool) {
	r, ok := c.records[id]
	return r, ok
}

// Annotations returns the selected annotation subset for id. The all
// selector concatenates statusLights, resetButton and ports in that fixed
// order. An unknown id yields an empty slice: nothing to draw, not an error.
func (c *Catalog) Annotations(id string, sel Selector) []Annotation {
	r, ok := c.records[id]
	if !ok {
		return nil
	}
	switch sel {
	case SelectorStatusLights:
		return r.StatusLights
	case SelectorResetButton:
		return r.ResetButton
	case SelectorPorts:
		return r.Ports
	case SelectorAll:
		all := make([]Annotation, 0, len(r.StatusLights)+len(r.ResetButton)+len(r.Ports))
		all = append(all, r.StatusLights...)
		all = append(all, r.ResetButton...)
		all = append(all, r.Ports...)
		return all
	}
	return nil
}

// All returns every record in insertion order.
func (c *Catalog) All() []EquipmentRecord {
	out := make([]EquipmentRecord, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

// ByCategory returns all records in the given category, in insertion order.
func (c *Catalog) ByCategory(cat Category) []EquipmentRecord {
	var out []EquipmentRecord
	for _, id := range c.order {
		if r := c.records[id]; r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// ByBrand returns all records for a brand, matched case-insensitively.
func (c *Catalog) ByBrand(brand string) []EquipmentRecord {
	var out []EquipmentRecord
	for _, id := range c.order {
		if r := c.records[id]; strings.EqualFold(r.Brand, brand) {
			out = append(out, r)
		}
	}
	return out
}
