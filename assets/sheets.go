package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // tile sheets
	"io/fs"
	"math"

	_ "golang.org/x/image/bmp"  // legacy tile sheets
	_ "golang.org/x/image/webp" // compressed tile sheets

	"github.com/automoto/mazerunner/shared/leveldata"
	"github.com/automoto/mazerunner/shared/tiletype"
)

// Image IDs of the sheets used as mask cache keys.
const (
	TilesID     = "tiles"
	ObstaclesID = "obstacles"
)

// Sheet layout.
const (
	SheetColumns = 16
	SheetRows    = 16
	// Enemy variants and trap variants on the obstacle sheet.
	ObstacleVariants = 11
	EnemyFrames      = 4
)

// LoadSheet decodes a tile sheet in any registered format (png, bmp, webp).
func LoadSheet(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet %s: %w", path, err)
	}
	return img, nil
}

// LoadTileset decodes both sheets from fsys.
func LoadTileset(fsys fs.FS, tilesPath, obstaclesPath string) (*leveldata.Tileset, error) {
	tiles, err := LoadSheet(fsys, tilesPath)
	if err != nil {
		return nil, err
	}
	obstacles, err := LoadSheet(fsys, obstaclesPath)
	if err != nil {
		return nil, err
	}
	return &leveldata.Tileset{
		TilesID:     tilesPath,
		Tiles:       tiles,
		ObstaclesID: obstaclesPath,
		Obstacles:   obstacles,
	}, nil
}

// DefaultTileset returns generated sheets matching the code layout of the
// embedded maps.
func DefaultTileset() *leveldata.Tileset {
	return &leveldata.Tileset{
		TilesID:     TilesID,
		Tiles:       GenerateTileSheet(),
		ObstaclesID: ObstaclesID,
		Obstacles:   GenerateObstacleSheet(),
	}
}

var (
	wallColor   = color.NRGBA{R: 90, G: 90, B: 110, A: 255}
	mortarColor = color.NRGBA{R: 60, G: 60, B: 75, A: 255}
	groundColor = color.NRGBA{R: 70, G: 130, B: 60, A: 255}
	beltColor   = color.NRGBA{R: 80, G: 120, B: 200, A: 110}
	railColor   = color.NRGBA{R: 5, G: 5, B: 15, A: 255}
	doorColor   = color.NRGBA{R: 200, G: 160, B: 60, A: 255}
	exitColor   = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	extraColor  = color.NRGBA{R: 150, G: 100, B: 60, A: 255}
	spikeColor  = color.NRGBA{R: 180, G: 30, B: 30, A: 255}
	glowColor   = color.NRGBA{R: 255, G: 80, B: 0, A: 12}
	enemyColor  = color.NRGBA{R: 120, G: 40, B: 160, A: 255}
)

// GenerateTileSheet draws a 16x16 grid of 16px tiles, one per code.
func GenerateTileSheet() *image.NRGBA {
	ts := leveldata.TileSize
	img := image.NewNRGBA(image.Rect(0, 0, SheetColumns*ts, SheetRows*ts))
	for code := 0; code < SheetColumns*SheetRows; code++ {
		x0, y0 := (code%SheetColumns)*ts, (code/SheetColumns)*ts
		drawTile(img, x0, y0, ts, code)
	}
	return img
}

func drawTile(img *image.NRGBA, x0, y0, ts, code int) {
	typ := tiletype.Classify(code)
	for y := 0; y < ts; y++ {
		for x := 0; x < ts; x++ {
			var c color.NRGBA
			switch typ {
			case tiletype.Wall:
				c = wallColor
				if y%8 == 0 || (x+(y/8)*8)%16 == 0 {
					c = mortarColor
				}
			case tiletype.SpeedBoost:
				c = beltColor
				if y < 2 || y >= ts-2 {
					c = railColor
				}
			case tiletype.Entrance:
				c = doorColor
			case tiletype.Exit:
				c = exitColor
			case tiletype.Extra:
				c = extraColor
			default:
				c = groundColor
				// Variant codes get a few darker specks.
				if code >= leveldata.GroundVariantBase && code < leveldata.GroundVariantBase+4 && (x*y+code)%7 == 0 {
					c.G -= 30
				}
			}
			img.SetNRGBA(x0+x, y0+y, c)
		}
	}
}

// GenerateObstacleSheet draws trap sprites along the top 32px row and one
// row of enemy walk frames per enemy variant below it.
func GenerateObstacleSheet() *image.NRGBA {
	tr, es := leveldata.TrapSize, leveldata.EnemySize
	w := ObstacleVariants * tr
	h := tr + ObstacleVariants*es
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	for v := 0; v < ObstacleVariants; v++ {
		drawSpikes(img, v*tr, 0, tr)
	}
	for v := 0; v < ObstacleVariants; v++ {
		for f := 0; f < EnemyFrames; f++ {
			drawEnemy(img, f*es, tr+v*es, es, f)
		}
	}
	return img
}

func drawSpikes(img *image.NRGBA, x0, y0, size int) {
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			switch {
			case d < c*0.6:
				img.SetNRGBA(x0+x, y0+y, spikeColor)
			case d < c:
				img.SetNRGBA(x0+x, y0+y, glowColor)
			}
		}
	}
}

func drawEnemy(img *image.NRGBA, x0, y0, size, frame int) {
	// 10px wide body centred in the frame, legs alternate per frame.
	left, right := (size-10)/2, (size-10)/2+10
	for y := 0; y < size; y++ {
		for x := left; x < right; x++ {
			if y >= size-3 && (x+frame)%3 == 0 {
				continue
			}
			img.SetNRGBA(x0+x, y0+y, enemyColor)
		}
	}
}
