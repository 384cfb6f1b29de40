// 18 Oct 2026

// Package alnpng draws an alignment as a picture. It is for looking at
// a few alignments by eye when a run gives funny results. The three
// lines of a bayes.Rendered are wrapped into blocks and mismatches and
// gaps are drawn in red.
package alnpng

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/andrew-torda/bayesalign/pkg/bayes"
)

const (
	fontSize = 14.
	dpi      = 72.
	spacing  = 1.3 // line spacing as a multiple of font size
	margin   = 10  // pixels
)

// CPerLine is how many columns we draw before wrapping.
var CPerLine = 60

var (
	colBad  = image.NewUniform(color.RGBA{0xcc, 0x00, 0x00, 0xff})
	colWild = image.NewUniform(color.RGBA{0x00, 0x44, 0xcc, 0xff})
	colOK   = image.Black
)

var (
	fontOnce sync.Once
	monoFont *truetype.Font
	fontErr  error
)

func getFont() (*truetype.Font, error) {
	fontOnce.Do(func() { monoFont, fontErr = freetype.ParseFont(gomono.TTF) })
	return monoFont, fontErr
}

// colour decides how to draw column k of a rendered alignment.
func colour(r bayes.Rendered, k int) *image.Uniform {
	switch r.Marker[k] {
	case '|':
		return colOK
	case ':':
		return colWild
	}
	return colBad
}

// Draw writes a png of the alignment to w. title goes on the first line.
func Draw(w io.Writer, r bayes.Rendered, title string) error {
	if len(r.Query) != len(r.Marker) || len(r.Ref) != len(r.Marker) {
		return fmt.Errorf("alnpng: lines of different length %d %d %d",
			len(r.Query), len(r.Marker), len(r.Ref))
	}
	f, err := getFont()
	if err != nil {
		return fmt.Errorf("alnpng: font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: fontSize, DPI: dpi})
	adv, _ := face.GlyphAdvance('M')
	colWidth := adv.Ceil()
	lineHeight := int(math.Round(fontSize * spacing))

	ncol := len(r.Marker)
	if CPerLine < 1 {
		return fmt.Errorf("alnpng: CPerLine %d", CPerLine)
	}
	nblock := (ncol + CPerLine - 1) / CPerLine
	width := len(title)
	if ncol > CPerLine {
		width = max(width, CPerLine)
	} else {
		width = max(width, ncol)
	}
	nlines := 1 + 4*nblock // title, then three lines and a blank per block
	rgba := image.NewRGBA(image.Rect(0, 0, 2*margin+width*colWidth, 2*margin+nlines*lineHeight))
	draw.Draw(rgba, rgba.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(rgba.Bounds())
	c.SetDst(rgba)
	c.SetSrc(colOK)

	y := margin + lineHeight
	if _, err := c.DrawString(title, freetype.Pt(margin, y)); err != nil {
		return fmt.Errorf("alnpng: %w", err)
	}
	lines := [3]string{r.Query, r.Marker, r.Ref}
	for start := 0; start < ncol; start += CPerLine {
		end := min(start+CPerLine, ncol)
		for _, line := range lines {
			y += lineHeight
			for k := start; k < end; k++ {
				c.SetSrc(colour(r, k))
				x := margin + (k-start)*colWidth
				if _, err := c.DrawString(line[k:k+1], freetype.Pt(x, y)); err != nil {
					return fmt.Errorf("alnpng: %w", err)
				}
			}
		}
		y += lineHeight
	}
	return png.Encode(w, rgba)
}
