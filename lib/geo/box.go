package geo

import "fmt"

// Box is an axis-aligned rectangle in model space. TopLeft holds the minimum
// corner (model space is Y-up, so "top left" follows the source coordinate
// convention, not screen orientation).
type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) MinX() float64 { return b.TopLeft.X }
func (b *Box) MinY() float64 { return b.TopLeft.Y }
func (b *Box) MaxX() float64 { return b.TopLeft.X + b.Width }
func (b *Box) MaxY() float64 { return b.TopLeft.Y + b.Height }

func (b *Box) Center() *Point {
	return NewPoint(b.TopLeft.X+b.Width/2, b.TopLeft.Y+b.Height/2)
}

// Expand grows the box to include p, treating a nil box as empty.
func (b *Box) Expand(p *Point) *Box {
	if b == nil {
		return NewBox(p.Copy(), 0, 0)
	}
	minX := b.MinX()
	minY := b.MinY()
	maxX := b.MaxX()
	maxY := b.MaxY()
	if p.X < minX {
		minX = p.X
	}
	if p.X > maxX {
		maxX = p.X
	}
	if p.Y < minY {
		minY = p.Y
	}
	if p.Y > maxY {
		maxY = p.Y
	}
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}

func (b *Box) ToString() string {
	if b == nil {
		return ""
	}
	return fmt.Sprintf("{TopLeft: %s, Width: %.2f, Height: %.2f}", b.TopLeft.ToString(), b.Width, b.Height)
}
