// Package ui holds the interfaces shared by the component packages.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}
