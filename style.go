package table

// Spacing constants for paddings and margins.
const (
	SpaceSM float32 = 4 // Small (default cell padding)
	SpaceMD float32 = 8 // Medium
)

// Style defines the visual appearance of a painted table.
type Style struct {
	// Text
	TextColor       uint32
	HeaderTextColor uint32 // 0 = use TextColor

	// Backgrounds
	BackgroundColor uint32 // Behind the whole table (0 = none)
	HeaderBgColor   uint32
	RowBgAltColor   uint32 // Every odd body row (0 = none)
	HoveredBgColor  uint32 // Clickable row under the mouse

	// Borders
	BorderColor uint32
	BorderSize  float32

	// Sizing
	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	CellPadding float32 // Horizontal text inset inside a cell
	RowPadding  float32 // Vertical space above and below the text
}

// RowHeight returns the height of one header or body row.
func (s Style) RowHeight() float32 {
	return s.CharHeight*s.FontScale + 2*s.RowPadding
}

// headerText returns the color for header labels.
func (s Style) headerText() uint32 {
	if s.HeaderTextColor == 0 {
		return s.TextColor
	}
	return s.HeaderTextColor
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:       ColorWhite,
		HeaderTextColor: 0, // Use TextColor

		BackgroundColor: RGBA(20, 20, 20, 200),
		HeaderBgColor:   RGBA(40, 40, 40, 255),
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		BorderColor: RGBA(80, 80, 80, 255),
		BorderSize:  1,

		FontScale:   1.0,
		CharWidth:   8,
		CharHeight:  8,
		CellPadding: SpaceSM,
		RowPadding:  SpaceSM,
	}
}

// GTAStyle returns a GTA San Andreas-inspired style.
// Dark theme with cyan/yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	return Style{
		TextColor:       ColorWhite,
		HeaderTextColor: RGBA(255, 200, 0, 255), // GTA yellow

		BackgroundColor: RGBA(0, 0, 0, 220),
		HeaderBgColor:   RGBA(0, 80, 120, 255),
		RowBgAltColor:   RGBA(20, 30, 40, 255),
		HoveredBgColor:  RGBA(50, 70, 90, 255),

		BorderColor: RGBA(0, 100, 150, 255),
		BorderSize:  1,

		FontScale:   2.0,
		CharWidth:   8,
		CharHeight:  8,
		CellPadding: SpaceMD,
		RowPadding:  SpaceSM,
	}
}
