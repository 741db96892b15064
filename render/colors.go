package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the scene
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black sky
	RgbTerrain    = tcell.NewRGBColor(0, 200, 0)     // Green surface line
	RgbGroundFill = tcell.NewRGBColor(0, 70, 0)      // Dark green below the surface
	RgbFrame      = tcell.NewRGBColor(60, 100, 255)  // Blue bike frame
	RgbWheel      = tcell.NewRGBColor(255, 60, 60)   // Red wheels
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White score digits
	RgbHUDText    = tcell.NewRGBColor(180, 180, 180) // Light gray HUD text
	RgbHUDAccent  = tcell.NewRGBColor(255, 165, 0)   // Orange while accelerating
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue status bar
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbOverlayBg  = tcell.NewRGBColor(20, 20, 30)    // Near-black overlay panel
	RgbOverlayRim = tcell.NewRGBColor(255, 255, 255) // White border and button outline
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Red game over title
	RgbButtonBg   = tcell.NewRGBColor(0, 0, 255)     // Blue restart button
	RgbButtonText = tcell.NewRGBColor(255, 255, 255) // White button label
)
