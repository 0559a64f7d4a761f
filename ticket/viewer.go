// Package ticket handles the downloadable artifacts of a booking: the QR
// code shown in the terminal and the PDF ticket saved to disk.
package ticket

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"strings"
	"sync"

	"kino-cli/model"
)

const quietZone = 2

var ErrNoQR = errors.New("no QR code open")

// Viewer holds at most one QR image. Opening a new one releases the previous
// buffer first.
type Viewer struct {
	mu        sync.Mutex
	bookingID int64
	blob      *model.Blob
	code      string
	decodeErr error
}

// Open decodes the image once; Render only returns the drawing, so a later
// release cannot race with decoding.
func (v *Viewer) Open(bookingID int64, blob model.Blob) {
	code, err := decode(blob.Data)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.releaseLocked()
	v.bookingID = bookingID
	v.blob = &blob
	v.code = code
	v.decodeErr = err
}

func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.releaseLocked()
}

// BookingID returns the booking whose QR is open.
func (v *Viewer) BookingID() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bookingID, v.blob != nil
}

// Render returns the open QR drawn with half-block characters, two modules
// per line.
// Light modules are drawn, so the code reads on a dark terminal.
func (v *Viewer) Render() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.blob == nil {
		return "", ErrNoQR
	}
	return v.code, v.decodeErr
}

func decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	modules, err := readModules(img)
	if err != nil {
		return "", err
	}
	return drawHalfBlocks(modules), nil
}

func (v *Viewer) releaseLocked() {
	if v.blob != nil {
		clear(v.blob.Data)
		v.blob.Data = nil
	}
	v.blob = nil
	v.bookingID = 0
	v.code = ""
	v.decodeErr = nil
}

// readModules samples the module grid. The module size is taken from the
// top-left finder pattern, which is seven modules wide.
func readModules(img image.Image) ([][]bool, error) {
	bounds := img.Bounds()
	minX, minY, maxX, maxY := bounds.Max.X, bounds.Max.Y, bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !isDark(img, x, y) {
				continue
			}
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}
	if maxX < minX {
		return nil, errors.New("qr image is blank")
	}

	run := 0
	for x := minX; x <= maxX && isDark(img, x, minY); x++ {
		run++
	}
	module := run / 7
	if module < 1 {
		return nil, errors.New("qr finder pattern not found")
	}

	cols := (maxX - minX + 1) / module
	rows := (maxY - minY + 1) / module
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = isDark(img, minX+c*module+module/2, minY+r*module+module/2)
		}
	}
	return grid, nil
}

func isDark(img image.Image, x int, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	luma := (299*r + 587*g + 114*b) / 1000
	return luma < 0x8000
}

func drawHalfBlocks(modules [][]bool) string {
	size := len(modules)
	width := 0
	if size > 0 {
		width = len(modules[0])
	}
	light := func(r int, c int) bool {
		r -= quietZone
		c -= quietZone
		if r < 0 || c < 0 || r >= size || c >= width {
			return true
		}
		return !modules[r][c]
	}

	totalRows := size + 2*quietZone
	totalCols := width + 2*quietZone
	var b strings.Builder
	for r := 0; r < totalRows; r += 2 {
		for c := 0; c < totalCols; c++ {
			top := light(r, c)
			bottom := r+1 < totalRows && light(r+1, c)
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		if r+2 < totalRows {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
