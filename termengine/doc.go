// Package termengine draws a sprig scene in a terminal with tcell.
//
// Pixel coordinates are mapped onto character cells (Config.CellWidth by
// Config.CellHeight pixels per cell). Rectangles fill their cells with the
// background color, blended by alpha; text nodes print their text in the
// foreground color over whatever is beneath. Rotation is not drawn.
//
// Arrow keys, Enter, Escape and Backspace are delivered to the engine's
// KeyBus under sprig's raw key names. Ctrl-C ends Run.
package termengine
