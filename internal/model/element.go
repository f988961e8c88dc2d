package model

import "encoding/json"

// Category distinguishes elements an agent can act on from static content.
type Category string

const (
	CategoryInteractive Category = "interactive"
	CategoryContent     Category = "content"
)

// Rect is an element's bounding box in the surface's logical coordinates.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width == 0 && r.Height == 0
}

// ContentMetadata describes a content (non-interactive) element.
type ContentMetadata struct {
	ContentRole string `yaml:"contentRole,omitempty" json:"contentRole,omitempty"`
}

// ElementState holds the mutable state of an element at snapshot time.
// Visible and Enabled default to true when the runner omits them.
type ElementState struct {
	Visible     bool   `yaml:"visible"               json:"visible"`
	Enabled     bool   `yaml:"enabled"               json:"enabled"`
	Focused     bool   `yaml:"focused,omitempty"     json:"focused,omitempty"`
	Checked     bool   `yaml:"checked,omitempty"     json:"checked,omitempty"`
	Value       string `yaml:"value,omitempty"       json:"value,omitempty"`
	TextContent string `yaml:"textContent,omitempty" json:"textContent,omitempty"`
	InnerHTML   string `yaml:"innerHTML,omitempty"   json:"innerHTML,omitempty"`
	Rect        *Rect  `yaml:"rect,omitempty"        json:"rect,omitempty"`
}

// UnmarshalJSON decodes an ElementState, defaulting visible and enabled to
// true when the runner omits them.
func (s *ElementState) UnmarshalJSON(data []byte) error {
	type wire struct {
		Visible     *bool  `json:"visible"`
		Enabled     *bool  `json:"enabled"`
		Focused     bool   `json:"focused"`
		Checked     bool   `json:"checked"`
		Value       string `json:"value"`
		TextContent string `json:"textContent"`
		InnerHTML   string `json:"innerHTML"`
		Rect        *Rect  `json:"rect"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.Visible = w.Visible == nil || *w.Visible
	s.Enabled = w.Enabled == nil || *w.Enabled
	s.Focused = w.Focused
	s.Checked = w.Checked
	s.Value = w.Value
	s.TextContent = w.TextContent
	s.InnerHTML = w.InnerHTML
	s.Rect = w.Rect
	return nil
}

// Element is one UI element as reported by the runner. Elements are
// immutable once received; each snapshot carries a fresh set.
type Element struct {
	ID              string           `yaml:"id"                        json:"id"`
	Type            string           `yaml:"type"                      json:"type"`
	Label           string           `yaml:"label,omitempty"           json:"label,omitempty"`
	Category        Category         `yaml:"category,omitempty"        json:"category,omitempty"`
	ContentMetadata *ContentMetadata `yaml:"contentMetadata,omitempty" json:"contentMetadata,omitempty"`
	State           ElementState     `yaml:"state"                     json:"state"`
}

// Snapshot is the element list for one surface at one instant.
type Snapshot struct {
	Elements []Element `yaml:"elements" json:"elements"`
}

// FilterInteractive returns only elements that are not static content.
func FilterInteractive(elements []Element) []Element {
	result := make([]Element, 0, len(elements))
	for _, el := range elements {
		if el.Category != CategoryContent {
			result = append(result, el)
		}
	}
	return result
}

// FilterContent returns only content (non-interactive) elements.
func FilterContent(elements []Element) []Element {
	result := make([]Element, 0, len(elements))
	for _, el := range elements {
		if el.Category == CategoryContent {
			result = append(result, el)
		}
	}
	return result
}

// FilterContentTypes returns elements whose content role or type matches one
// of the given names.
func FilterContentTypes(elements []Element, types []string) []Element {
	if len(types) == 0 {
		return elements
	}
	wanted := make(map[string]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	var result []Element
	for _, el := range elements {
		if el.ContentMetadata != nil && wanted[el.ContentMetadata.ContentRole] {
			result = append(result, el)
			continue
		}
		if wanted[el.Type] {
			result = append(result, el)
		}
	}
	return result
}
