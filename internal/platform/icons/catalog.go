package icons

import "strings"

// Family identifies the concept an icon stands for, independent of the
// export name a glyph library uses for it.
type Family string

const (
	FamilyLinkedIn Family = "linkedin"
	FamilyGitHub   Family = "github"
	FamilyMail     Family = "mail"
	FamilyFileText Family = "file-text"
)

// Definition describes one glyph family and the library keys that may
// provide it, in probe order.
type Definition struct {
	Family      Family
	Description string
	Aliases     []string
}

var catalog = []Definition{
	{
		Family:      FamilyLinkedIn,
		Description: "LinkedIn profile link.",
		Aliases:     []string{"Linkedin", "LinkedIn"},
	},
	{
		Family:      FamilyGitHub,
		Description: "GitHub profile and repository links.",
		Aliases:     []string{"Github", "GitHub"},
	},
	{
		Family:      FamilyMail,
		Description: "Contact email links.",
		Aliases:     []string{"Mail"},
	},
	{
		Family:      FamilyFileText,
		Description: "Resume download.",
		Aliases:     []string{"FileText", "Filetext", "fileText"},
	},
}

// FamilyFor returns the family whose aliases contain name. Matching ignores
// case so drifted spellings ("linkedin", "GITHUB") still land on a family.
func FamilyFor(name string) (Definition, bool) {
	if name == "" {
		return Definition{}, false
	}
	for _, def := range catalog {
		for _, alias := range def.Aliases {
			if strings.EqualFold(alias, name) {
				return def, true
			}
		}
	}
	return Definition{}, false
}
