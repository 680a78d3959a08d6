package assets

import (
	"bytes"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/automoto/windowwalker/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprite file names inside a sprite directory.
var (
	WalkFrameFiles = [motion.WalkFrameCount]string{
		"walk-1.png", "walk-2.png", "walk-3.png",
		"walk-4.png", "walk-5.png", "walk-6.png",
	}
	FallFrameFile = "fall.png"
)

// LoadWalkerSprites loads the walker frames from dir. An empty dir gives
// the built-in frames drawn at w x h.
func LoadWalkerSprites(dir string, w, h int) (motion.SpriteSet[*ebiten.Image], error) {
	if dir == "" {
		return DrawnSprites(w, h), nil
	}
	return LoadSpritesFS(os.DirFS(dir))
}

// LoadSpritesFS loads walk-1.png..walk-6.png and fall.png from fsys.
func LoadSpritesFS(fsys fs.FS) (motion.SpriteSet[*ebiten.Image], error) {
	var walk [motion.WalkFrameCount]*ebiten.Image
	for i, name := range WalkFrameFiles {
		img, err := loadImage(fsys, name)
		if err != nil {
			return motion.SpriteSet[*ebiten.Image]{}, err
		}
		walk[i] = img
	}
	fall, err := loadImage(fsys, FallFrameFile)
	if err != nil {
		return motion.SpriteSet[*ebiten.Image]{}, err
	}

	log.Printf("[assets] loaded %d walk frames and a fall frame", len(walk))
	return motion.NewSpriteSet(walk, fall), nil
}

func loadImage(fsys fs.FS, name string) (*ebiten.Image, error) {
	imgBytes, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sprite %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return img, nil
}

var (
	bodyColor = color.RGBA{R: 250, G: 120, B: 160, A: 255}
	skinColor = color.RGBA{R: 255, G: 224, B: 196, A: 255}
	hairColor = color.RGBA{R: 70, G: 40, B: 30, A: 255}
	legColor  = color.RGBA{R: 50, G: 50, B: 70, A: 255}
)

// DrawnSprites draws a stick figure walking left, with a six-step stride,
// and a fall pose with raised arms.
func DrawnSprites(w, h int) motion.SpriteSet[*ebiten.Image] {
	var walk [motion.WalkFrameCount]*ebiten.Image
	for i := range walk {
		phase := 2 * math.Pi * float64(i) / motion.WalkFrameCount
		walk[i] = drawFigure(w, h, math.Sin(phase), false)
	}
	return motion.NewSpriteSet(walk, drawFigure(w, h, 0, true))
}

// drawFigure draws one pose. stride in [-1, 1] swings the legs and arms.
func drawFigure(w, h int, stride float64, falling bool) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	headR := fw * 0.22
	cx := fw / 2
	headY := headR + 1
	hipY := fh * 0.62
	shoulderY := headY + headR + fh*0.05
	swing := float32(stride) * fw * 0.25
	strokeW := max(fw/12, 1)

	// Legs
	vector.StrokeLine(img, cx, hipY, cx-swing, fh-1, strokeW, legColor, true)
	vector.StrokeLine(img, cx, hipY, cx+swing, fh-1, strokeW, legColor, true)

	// Body
	vector.FillRect(img, cx-fw*0.18, shoulderY, fw*0.36, hipY-shoulderY, bodyColor, true)

	// Arms
	if falling {
		vector.StrokeLine(img, cx-fw*0.18, shoulderY, cx-fw*0.45, shoulderY-fh*0.15, strokeW, skinColor, true)
		vector.StrokeLine(img, cx+fw*0.18, shoulderY, cx+fw*0.45, shoulderY-fh*0.15, strokeW, skinColor, true)
	} else {
		vector.StrokeLine(img, cx-fw*0.18, shoulderY, cx-fw*0.18+swing, hipY, strokeW, skinColor, true)
		vector.StrokeLine(img, cx+fw*0.18, shoulderY, cx+fw*0.18-swing, hipY, strokeW, skinColor, true)
	}

	// Head, facing left
	vector.FillCircle(img, cx, headY, headR, skinColor, true)
	vector.FillRect(img, cx-headR*0.2, headY-headR, headR*1.2, headR*0.9, hairColor, true)
	vector.FillCircle(img, cx-headR*0.5, headY, max(headR*0.12, 1), hairColor, true)

	return img
}
