package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette entries used by the renderer.
const (
	ColorDefault Color = iota
	ColorBubble
	ColorBubbleCore
	ColorGuide
	ColorLine
	ColorParticle
	ColorHUD
	ColorHighlight
	ColorDim
	ColorError
)
