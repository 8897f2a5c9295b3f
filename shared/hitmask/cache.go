package hitmask

import "image"

// Region names a rectangle of a source image. ImageID identifies the image
// for caching; two regions with the same ID and rectangle share one mask.
type Region struct {
	ImageID string
	Image   image.Image
	Rect    image.Rectangle
}

// Key is the structured cache identity of a region under a rule.
type Key struct {
	ImageID string
	X, Y    int
	W, H    int
	Rule    Rule
}

func (r Region) key(rule Rule) Key {
	return Key{
		ImageID: r.ImageID,
		X:       r.Rect.Min.X,
		Y:       r.Rect.Min.Y,
		W:       r.Rect.Dx(),
		H:       r.Rect.Dy(),
		Rule:    rule,
	}
}

// Cache holds masks for the lifetime of an asset set. It is not safe for
// concurrent use; the game loop owns it.
type Cache struct {
	masks  map[Key]*Mask
	builds int
}

func NewCache() *Cache {
	return &Cache{masks: make(map[Key]*Mask)}
}

// Mask returns the cached mask for region under rule, decoding it on first
// use.
func (c *Cache) Mask(region Region, rule Rule) *Mask {
	k := region.key(rule)
	if m, ok := c.masks[k]; ok {
		return m
	}
	m := Build(region.Image, region.Rect, rule)
	c.builds++
	c.masks[k] = m
	return m
}

// Builds returns how many masks have been decoded from pixels.
func (c *Cache) Builds() int {
	return c.builds
}

// Len returns the number of cached masks.
func (c *Cache) Len() int {
	return len(c.masks)
}
