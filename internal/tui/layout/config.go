package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Dropdown DropdownConfig
	Modal    ModalConfig
	Input    InputConfig
	Text     TextConfig
}

// DropdownConfig holds dimensions for the selector box and its list.
type DropdownConfig struct {
	// WidthPercent is the box width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum box width in characters.
	MinWidth int

	// MaxWidth is the maximum box width in characters.
	MaxWidth int

	// HeightReduction is subtracted from terminal height for list rows.
	// Accounts for: app padding (1) + header box (4) + search line (1) + list borders (2) + help bar (2) = 10
	HeightReduction int

	// MinRows is the minimum number of list rows shown.
	MinRows int

	// MaxRows caps the list so it stays a dropdown, not a pane.
	MaxRows int

	// ContentPadding is subtracted from box width for row rendering.
	ContentPadding int

	// StatusColumnWidth is reserved at the end of each row for status and timestamp.
	StatusColumnWidth int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the standard modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// HelpLeftColumnWidth: width for help overlay left column.
	HelpLeftColumnWidth int

	// HelpRightColumnWidth: width for help overlay right column.
	HelpRightColumnWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	URLCharLimit    int
	SearchCharLimit int

	StandardWidth int // add dialog URL input
	SearchWidth   int // dropdown search input
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Dropdown: DropdownConfig{
			WidthPercent:      60,
			MinWidth:          40,
			MaxWidth:          72,
			HeightReduction:   10,
			MinRows:           3,
			MaxRows:           10,
			ContentPadding:    4,
			StatusColumnWidth: 24,
		},
		Modal: ModalConfig{
			DefaultWidthPercent:  40,
			MinWidth:             50,
			MaxWidth:             80,
			HelpLeftColumnWidth:  24,
			HelpRightColumnWidth: 24,
		},
		Input: InputConfig{
			URLCharLimit:    500,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
