package icons

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
)

// DefaultSize is the icon box size in pixels when none is given.
const DefaultSize = 16

// Props configures one icon render.
type Props struct {
	Name  string
	Size  int
	Class string
	// Visible exposes the icon to assistive technology. Icons are
	// aria-hidden by default since they sit next to a text label.
	Visible bool
}

// Resolver turns icon names into components using one glyph set.
type Resolver struct {
	glyphs GlyphSet
}

// NewResolver returns a resolver over glyphs. A nil set makes every icon
// render as its fallback.
func NewResolver(glyphs GlyphSet) Resolver {
	return Resolver{glyphs: glyphs}
}

// Resolve returns the glyph for name, probing the family's aliases in order.
func (r Resolver) Resolve(name string) (Glyph, bool) {
	if r.glyphs == nil {
		return Glyph{}, false
	}
	def, ok := FamilyFor(name)
	if !ok {
		return Glyph{}, false
	}
	for _, key := range def.Aliases {
		if glyph, ok := r.glyphs.Lookup(key); ok {
			glyph.Family = def.Family
			return glyph, true
		}
	}
	return Glyph{}, false
}

// Icon renders the glyph for props.Name, or the initials fallback.
func (r Resolver) Icon(props Props) templ.Component {
	size := props.Size
	if size <= 0 {
		size = DefaultSize
	}
	glyph, ok := r.Resolve(props.Name)
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if ok {
			return writeGlyph(w, glyph, size, props)
		}
		return writeFallback(w, props.Name, size, props)
	})
}

// Initials returns the first two characters of name, upper-cased.
func Initials(name string) string {
	if utf8.RuneCountInString(name) <= 2 {
		return strings.ToUpper(name)
	}
	end := 0
	for i := 0; i < 2; i++ {
		_, width := utf8.DecodeRuneInString(name[end:])
		end += width
	}
	return strings.ToUpper(name[:end])
}

// FallbackFontSize returns the initials font size for a box of size pixels.
func FallbackFontSize(size int) int {
	return int(math.Round(float64(size) * 0.6))
}

func writeGlyph(w io.Writer, glyph Glyph, size int, props Props) error {
	px := strconv.Itoa(size)
	class := strings.TrimSpace("icon " + props.Class)
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" class="%s" width="%s" height="%s" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" data-icon="%s"%s>%s</svg>`,
		templ.EscapeString(class), px, px, templ.EscapeString(string(glyph.Family)), ariaAttrs(props), glyph.Body)
	if err != nil {
		return fmt.Errorf("write icon %s: %w", glyph.Family, err)
	}
	return nil
}

func writeFallback(w io.Writer, name string, size int, props Props) error {
	style := fmt.Sprintf("display:inline-flex;width:%dpx;height:%dpx;align-items:center;justify-content:center;font-size:%dpx",
		size, size, FallbackFontSize(size))
	classAttr := ""
	if class := strings.TrimSpace(props.Class); class != "" {
		classAttr = ` class="` + templ.EscapeString(class) + `"`
	}
	_, err := fmt.Fprintf(w, `<span role="img" data-icon-fallback="true"%s style="%s"%s>%s</span>`,
		classAttr, style, ariaAttrs(props), templ.EscapeString(Initials(name)))
	if err != nil {
		return fmt.Errorf("write icon fallback: %w", err)
	}
	return nil
}

func ariaAttrs(props Props) string {
	if props.Visible {
		return ` aria-label="` + templ.EscapeString(props.Name) + `"`
	}
	return ` aria-hidden="true"`
}
