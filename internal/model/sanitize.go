package model

import "fmt"

// Boundary markers wrapped around page-sourced text so a model consuming the
// output can tell trusted structural metadata from untrusted content.
const (
	ContentStart = "<<CONTENT>>"
	ContentEnd   = "<</CONTENT>>"
)

// Sanitize wraps the element's content-bearing state fields in boundary
// markers. Empty fields are left untouched.
func Sanitize(el *Element) {
	if el.State.TextContent != "" {
		el.State.TextContent = ContentStart + el.State.TextContent + ContentEnd
	}
	if el.State.InnerHTML != "" {
		el.State.InnerHTML = ContentStart + el.State.InnerHTML + ContentEnd
	}
	if el.State.Value != "" {
		el.State.Value = ContentStart + el.State.Value + ContentEnd
	}
}

// Truncate limits text to maxLen characters, appending the original length
// so the caller knows how much was cut. A maxLen of 0 disables truncation.
// Lengths are in characters, not bytes, so multi-byte content is never cut
// mid-rune.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return fmt.Sprintf("%s... [%d chars total]", string(runes[:maxLen]), len(runes))
}

// TruncateElement applies Truncate to the label and each content-bearing
// state field. Call this before Sanitize so markers are never cut mid-way.
func TruncateElement(el *Element, maxLen int) {
	if maxLen <= 0 {
		return
	}
	el.Label = Truncate(el.Label, maxLen)
	el.State.TextContent = Truncate(el.State.TextContent, maxLen)
	el.State.InnerHTML = Truncate(el.State.InnerHTML, maxLen)
	el.State.Value = Truncate(el.State.Value, maxLen)
}
