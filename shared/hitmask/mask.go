// Package hitmask builds per-tile opacity masks from tile-sheet regions and
// answers pixel-accurate point queries against them.
package hitmask

import (
	"fmt"
	"image"
	"image/color"
)

// Default alpha thresholds. A pixel is opaque when its alpha exceeds the
// threshold.
const (
	OpaqueThreshold = 150
	ThinThreshold   = 20
)

// Rule decides which source pixels count as solid.
type Rule int

const (
	// Opaque keeps pixels with alpha above OpaqueThreshold.
	Opaque Rule = iota
	// Thin keeps pixels with alpha above ThinThreshold.
	Thin
	// Handrail keeps only near-black opaque pixels, the rail of a walkway.
	Handrail
)

func (r Rule) String() string {
	switch r {
	case Opaque:
		return "opaque"
	case Thin:
		return "thin"
	case Handrail:
		return "handrail"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// Accept reports whether a pixel is solid under the rule.
func (r Rule) Accept(c color.Color) bool {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch r {
	case Thin:
		return n.A > ThinThreshold
	case Handrail:
		return n.R <= 10 && n.G <= 10 && n.B <= 20 && n.A > OpaqueThreshold
	default:
		return n.A > OpaqueThreshold
	}
}

// Mask is an immutable grid of solid bits, one per source pixel. Row 0 is the
// top row of the source image.
type Mask struct {
	w, h int
	bits []bool
}

// Solid returns a mask with every bit set.
func Solid(w, h int) *Mask {
	m := &Mask{w: w, h: h, bits: make([]bool, w*h)}
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// Build decodes rect of img into a mask under rule. A nil image yields a
// solid mask the size of rect.
func Build(img image.Image, rect image.Rectangle, rule Rule) *Mask {
	w, h := rect.Dx(), rect.Dy()
	if img == nil {
		return Solid(w, h)
	}
	m := &Mask{w: w, h: h, bits: make([]bool, w*h)}
	bounds := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := image.Pt(rect.Min.X+x, rect.Min.Y+y)
			if !p.In(bounds) {
				continue
			}
			m.bits[y*w+x] = rule.Accept(img.At(p.X, p.Y))
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.w }
func (m *Mask) Height() int { return m.h }

// At returns the bit at (x, y), or false outside the mask.
func (m *Mask) At(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of solid bits.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}
