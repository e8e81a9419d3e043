package core

// Color represents a foreground color for a screen cell.
// The platform maps these to terminal styles.
type Color uint8

// Predefined colors for dump elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
)
