package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/SeamusWaldron/stickercube"
)

// Supported image formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

var gridColor = color.RGBA{0x20, 0x20, 0x20, 0xff}

// minLabelCell is the smallest cell that fits a 7x13 face label.
const minLabelCell = 16

// Image draws the layout as a net with cellSize pixels per facet. Empty
// parts of the net are transparent. Face centers carry the face letter
// when cells are large enough.
func Image(l stickercube.Layout, cellSize int) *image.RGBA {
	if cellSize < 1 {
		cellSize = 1
	}

	// One pixel per facet, then scaled up.
	small := image.NewRGBA(image.Rect(0, 0, NetColumns, NetRows))
	for _, cell := range Cells() {
		small.SetRGBA(cell.Col, cell.Row, RGBA(l.At(cell.Face, cell.Index)))
	}

	dst := image.NewRGBA(image.Rect(0, 0, NetColumns*cellSize, NetRows*cellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), small, small.Bounds(), draw.Src, nil)

	if cellSize >= 4 {
		for _, cell := range Cells() {
			drawBorder(dst, cellRect(cell, cellSize))
		}
	}
	if cellSize >= minLabelCell {
		for _, face := range stickercube.Faces {
			drawLabel(dst, face, l.At(face, 4), cellSize)
		}
	}
	return dst
}

func cellRect(cell Cell, size int) image.Rectangle {
	x, y := cell.Col*size, cell.Row*size
	return image.Rect(x, y, x+size, y+size)
}

func drawBorder(dst *image.RGBA, r image.Rectangle) {
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, gridColor)
		dst.SetRGBA(x, r.Max.Y-1, gridColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, gridColor)
		dst.SetRGBA(r.Max.X-1, y, gridColor)
	}
}

func drawLabel(dst *image.RGBA, face stickercube.Face, c stickercube.Color, size int) {
	ink := color.Black
	if isDark(c) {
		ink = color.White
	}

	origin := faceOrigin[face]
	cx := (origin[0]+1)*size + size/2
	cy := (origin[1]+1)*size + size/2

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	label := face.String()
	width := d.MeasureString(label).Ceil()
	metrics := basicfont.Face7x13.Metrics()
	baseline := cy + (metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	d.Dot = fixed.P(cx-width/2, baseline)
	d.DrawString(label)
}

// FormatFromPath picks an image format from a file extension.
func FormatFromPath(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, true
	case ".webp":
		return FormatWebP, true
	case ".tga":
		return FormatTGA, true
	}
	return "", false
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}
