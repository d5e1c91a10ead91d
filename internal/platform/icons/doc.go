// Package icons resolves symbolic icon names onto glyphs.
//
// Icon libraries rename their exports across versions ("Github" vs
// "GitHub"), so callers name a concept and the resolver probes an ordered
// alias table against whatever glyph set is linked in. When nothing
// resolves, the icon degrades to a text-initials box; resolution never fails.
package icons
