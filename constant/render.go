package constant

// Terminal layout
const (
	// HUDRows is reserved at the top for the score
	HUDRows = 1

	// StatusRows is reserved at the bottom for the key hint line
	StatusRows = 1

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// MinViewRows below which the terminal is too small to draw the world
	MinViewRows = 8
)

// Splash (large score digits) font metrics
const (
	SplashCharWidth   = 5
	SplashCharHeight  = 5
	SplashCharSpacing = 1
)

// Game-over overlay, terminal cells
const (
	OverlayWidth        = 30
	OverlayHeight       = 9
	OverlayButtonWidth  = 13
	OverlayButtonHeight = 3
)

// Game-over overlay, window pixels
const (
	PanelWidth        = 400
	PanelHeight       = 300
	PanelButtonWidth  = 150
	PanelButtonHeight = 50
	ScoreFontSize     = 48
	TerrainLineWidth  = 5
)
