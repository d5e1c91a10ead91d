package icons

// Glyph is one renderable vector icon.
type Glyph struct {
	Family Family
	// Key is the export name the glyph set published it under.
	Key string
	// Body is the inner SVG markup drawn on a 24x24 viewBox.
	Body string
}

// GlyphSet supplies glyphs by library export key. A nil set is valid and
// provides nothing.
type GlyphSet interface {
	Lookup(key string) (Glyph, bool)
}

// MapGlyphSet is a GlyphSet backed by an export-key map.
type MapGlyphSet map[string]Glyph

// Lookup implements GlyphSet.
func (m MapGlyphSet) Lookup(key string) (Glyph, bool) {
	glyph, ok := m[key]
	return glyph, ok
}

const (
	lucideLinkedIn = `<path d="M16 8a6 6 0 0 1 6 6v7h-4v-7a2 2 0 0 0-2-2 2 2 0 0 0-2 2v7h-4v-7a6 6 0 0 1 6-6z"/><rect width="4" height="12" x="2" y="9"/><circle cx="4" cy="4" r="2"/>`
	lucideGitHub   = `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`
	lucideMail     = `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`
	lucideFileText = `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/><path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`
)

// Lucide returns the Lucide subset used by the portfolio, keyed by the
// export names of current Lucide releases. Each call builds a fresh set.
func Lucide() MapGlyphSet {
	return MapGlyphSet{
		"Linkedin": {Family: FamilyLinkedIn, Key: "Linkedin", Body: lucideLinkedIn},
		"Github":   {Family: FamilyGitHub, Key: "Github", Body: lucideGitHub},
		"Mail":     {Family: FamilyMail, Key: "Mail", Body: lucideMail},
		"FileText": {Family: FamilyFileText, Key: "FileText", Body: lucideFileText},
	}
}
