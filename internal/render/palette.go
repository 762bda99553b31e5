// Package render draws cube layouts as terminal nets and raster images.
//
// Every renderer works from a stickercube.Layout and the fixed net
// arrangement: U above, then L F R B in a row, then D below.
package render

import (
	"fmt"
	"image/color"

	"github.com/SeamusWaldron/stickercube"
)

// Net dimensions in facets.
const (
	NetColumns = 12
	NetRows    = 9
)

var palette = [...]color.RGBA{
	stickercube.White:  {0xff, 0xff, 0xff, 0xff},
	stickercube.Yellow: {0xff, 0xd5, 0x00, 0xff},
	stickercube.Green:  {0x00, 0x9b, 0x48, 0xff},
	stickercube.Blue:   {0x00, 0x46, 0xad, 0xff},
	stickercube.Orange: {0xff, 0x58, 0x00, 0xff},
	stickercube.Red:    {0xb7, 0x12, 0x34, 0xff},
}

var unknownColor = color.RGBA{0x80, 0x80, 0x80, 0xff}

// RGBA returns the display color of a facet color.
func RGBA(c stickercube.Color) color.RGBA {
	if !c.Valid() {
		return unknownColor
	}
	return palette[c]
}

// Hex returns the display color as #rrggbb.
func Hex(c stickercube.Color) string {
	rgba := RGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// isDark reports whether light text reads better on c.
func isDark(c stickercube.Color) bool {
	rgba := RGBA(c)
	// Rec. 601 luma
	luma := 299*int(rgba.R) + 587*int(rgba.G) + 114*int(rgba.B)
	return luma < 128*1000
}

// faceOrigin is the top-left facet cell of each face in the net.
var faceOrigin = map[stickercube.Face][2]int{
	stickercube.FaceUp:    {3, 0},
	stickercube.FaceLeft:  {0, 3},
	stickercube.FaceFront: {3, 3},
	stickercube.FaceRight: {6, 3},
	stickercube.FaceBack:  {9, 3},
	stickercube.FaceDown:  {3, 6},
}

// Cell locates one facet in the net.
type Cell struct {
	Face  stickercube.Face
	Index int
	Col   int
	Row   int
}

// Cells returns the 54 net cells in layout order.
func Cells() []Cell {
	cells := make([]Cell, 0, stickercube.FacetCount)
	for _, face := range stickercube.Faces {
		origin := faceOrigin[face]
		for i := 0; i < stickercube.FacetsPerFace; i++ {
			cells = append(cells, Cell{
				Face:  face,
				Index: i,
				Col:   origin[0] + i%3,
				Row:   origin[1] + i/3,
			})
		}
	}
	return cells
}

// grid returns the net as rows of cells; empty positions are nil.
func grid(l stickercube.Layout) [NetRows][NetColumns]*stickercube.Color {
	var g [NetRows][NetColumns]*stickercube.Color
	for _, cell := range Cells() {
		c := l.At(cell.Face, cell.Index)
		g[cell.Row][cell.Col] = &c
	}
	return g
}
