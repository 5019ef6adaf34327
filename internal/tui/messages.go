package tui

import (
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

// Screen determines which screen to render
type Screen int

const (
	ScreenHome Screen = iota
	ScreenConverter
)

// CategorySelectedMsg opens the converter for a category
type CategorySelectedMsg struct {
	Category units.Category
}

// BackToHomeMsg requests return to the category list
type BackToHomeMsg struct{}
