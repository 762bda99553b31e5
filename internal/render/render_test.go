package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/charmbracelet/lipgloss"
	"github.com/ftrvxmtrx/tga"

	"github.com/SeamusWaldron/stickercube"
)

func TestCellsCoverNet(t *testing.T) {
	cells := Cells()
	if len(cells) != stickercube.FacetCount {
		t.Fatalf("Cells() returned %d cells, want %d", len(cells), stickercube.FacetCount)
	}
	seen := map[[2]int]bool{}
	for i, c := range cells {
		if int(c.Face)*stickercube.FacetsPerFace+c.Index != i {
			t.Errorf("cell %d out of layout order: %+v", i, c)
		}
		if c.Col < 0 || c.Col >= NetColumns || c.Row < 0 || c.Row >= NetRows {
			t.Errorf("cell %+v outside the net", c)
		}
		key := [2]int{c.Col, c.Row}
		if seen[key] {
			t.Errorf("two cells at %v", key)
		}
		seen[key] = true
	}
}

func TestNetPlainMatchesLayout(t *testing.T) {
	l := stickercube.New().ApplyNotation("R U").Layout()
	if got := Net(l, false); got != l.Net() {
		t.Errorf("plain Net differs from Layout.Net:\n%s", got)
	}
}

func TestNetStyled(t *testing.T) {
	l := stickercube.New().ApplyNotation("F").Layout()
	out := Net(l, true)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != NetRows {
		t.Fatalf("styled net has %d lines, want %d", len(lines), NetRows)
	}
	if w := lipgloss.Width(lines[4]); w != NetColumns*3 {
		t.Errorf("middle row width = %d, want %d", w, NetColumns*3)
	}
	if w := lipgloss.Width(lines[0]); w != 6*3 {
		t.Errorf("top row width = %d, want %d", w, 6*3)
	}
	for _, letter := range []string{"W", "Y", "G", "B", "O", "R"} {
		if !strings.Contains(out, letter) {
			t.Errorf("styled net missing %s", letter)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(stickercube.White); got != "#ffffff" {
		t.Errorf("Hex(White) = %s", got)
	}
	if got := Hex(stickercube.Color(9)); got != "#808080" {
		t.Errorf("Hex(unknown) = %s", got)
	}
}

func colorAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// cellCenter returns the middle pixel of a cell.
func cellCenter(cell Cell, size int) (int, int) {
	return cell.Col*size + size/2, cell.Row*size + size/2
}

func TestImageColors(t *testing.T) {
	const size = 20
	l := stickercube.New().ApplyNotation("R U2 x").Layout()
	img := Image(l, size)

	if got := img.Bounds().Size(); got != image.Pt(NetColumns*size, NetRows*size) {
		t.Fatalf("image size = %v", got)
	}

	for _, cell := range Cells() {
		if cell.Index == 4 {
			continue
		}
		x, y := cellCenter(cell, size)
		want := RGBA(l.At(cell.Face, cell.Index))
		if got := colorAt(img, x, y); got != want {
			t.Errorf("%s%d at (%d,%d) = %v, want %v", cell.Face, cell.Index, x, y, got, want)
		}
	}

	// Outside the net is transparent.
	if got := colorAt(img, 1, 1); got.A != 0 {
		t.Errorf("corner of image should be transparent, got %v", got)
	}
	// Cell borders are drawn.
	if got := colorAt(img, 3*size, 3*size+size/2); got != gridColor {
		t.Errorf("border pixel = %v, want %v", got, gridColor)
	}
}

func TestImageLabelsCenters(t *testing.T) {
	const size = 32
	l := stickercube.New().Layout()
	img := Image(l, size)

	origin := faceOrigin[stickercube.FaceFront]
	r := image.Rect((origin[0]+1)*size+1, (origin[1]+1)*size+1, (origin[0]+2)*size-1, (origin[1]+2)*size-1)
	face := RGBA(stickercube.Green)
	labelled := false
	for y := r.Min.Y; y < r.Max.Y && !labelled; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if colorAt(img, x, y) != face {
				labelled = true
				break
			}
		}
	}
	if !labelled {
		t.Error("front center should carry a label")
	}
}

func TestImageTinyCells(t *testing.T) {
	img := Image(stickercube.New().Layout(), 0)
	if got := img.Bounds().Size(); got != image.Pt(NetColumns, NetRows) {
		t.Errorf("image size = %v", got)
	}
}

func TestEncodeFormats(t *testing.T) {
	l := stickercube.New().ApplyNotation("F2 M").Layout()
	img := Image(l, 8)

	decoders := map[string]func([]byte) (image.Image, error){
		FormatPNG: func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		FormatWebP: func(b []byte) (image.Image, error) {
			return nativewebp.Decode(bytes.NewReader(b))
		},
		FormatTGA: func(b []byte) (image.Image, error) { return tga.Decode(bytes.NewReader(b)) },
	}

	for format, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Fatalf("Encode(%s) failed: %v", format, err)
		}
		got, err := decode(buf.Bytes())
		if err != nil {
			t.Fatalf("decode %s failed: %v", format, err)
		}
		if got.Bounds().Size() != img.Bounds().Size() {
			t.Errorf("%s size = %v, want %v", format, got.Bounds().Size(), img.Bounds().Size())
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, img, "bmp"); err == nil {
		t.Error("Encode(bmp) should fail")
	}
}

func TestPNGKeepsColors(t *testing.T) {
	const size = 8
	l := stickercube.New().ApplyNotation("U").Layout()
	var buf bytes.Buffer
	if err := Encode(&buf, Image(l, size), FormatPNG); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	cell := Cells()[int(stickercube.FaceFront)*9]
	x, y := cellCenter(cell, size)
	if got, want := colorAt(img, x, y), RGBA(stickercube.Red); got != want {
		t.Errorf("F0 after U = %v, want red %v", got, want)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"net.png":  FormatPNG,
		"NET.WEBP": FormatWebP,
		"a/b.tga":  FormatTGA,
	}
	for path, want := range cases {
		got, ok := FormatFromPath(path)
		if !ok || got != want {
			t.Errorf("FormatFromPath(%q) = %q, %v", path, got, ok)
		}
	}
	if _, ok := FormatFromPath("net.gif"); ok {
		t.Error("gif should not be recognized")
	}
}
