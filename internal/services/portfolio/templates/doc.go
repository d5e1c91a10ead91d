// Package templates renders the portfolio page from a profile.
//
// Components are plain templ.Component values. Output is a pure function of
// the PageView, so rendering the same view twice yields identical bytes.
package templates
