// Package quotegen renders shareable quote cards: a user avatar fills
// the left of a fixed-size canvas, a dark gradient fades its trailing
// edge out, and the quote with its attribution is centered in the space
// that remains.
//
// The whole render is a synchronous, CPU-bound transform of its inputs;
// a Producer holds only immutable configuration and may be shared across
// renders.
package quotegen

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png" // register PNG decoding for avatar sources
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Output defaults, overridable through Config.
const (
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	DefaultFontScale = 120.0
)

// Visual tuning constants. The exact values are aesthetic choices, not
// derived from content; they are gathered here so a retune touches one
// place.
const (
	// avatarCropDivisor crops away the left 1/4 of the resized avatar,
	// biasing the frame toward the subject's right side.
	avatarCropDivisor = 4
	// gradientWidthDivisor sizes the fade strip at 1/3 of the avatar.
	gradientWidthDivisor = 3
	// identityCanvasDivisor sizes a generated avatar at 1/3 of the
	// canvas width.
	identityCanvasDivisor = 3
	// identityMarginDivisor leaves a 1/12 gap between the identity
	// circle and its canvas edge.
	identityMarginDivisor = 12
	// identityLetterScale is the pixel scale of the identity letter.
	identityLetterScale = 300.0
	// textGap insets centered text from the exact region center.
	textGap = 30
	// attributionScaleDivisor derives the attribution scale from the
	// quote scale.
	attributionScaleDivisor = 3
	// attributionAnchorDivisor hangs the attribution at
	// height - height/4.
	attributionAnchorDivisor = 4
	// jpegQuality is the encoder setting for the final buffer.
	jpegQuality = 88
)

var (
	backgroundColor  = color.RGBA{0, 0, 0, 255}
	quoteColor       = color.RGBA{255, 255, 255, 255}
	attributionColor = color.RGBA{147, 147, 147, 255}
	identityInkColor = color.RGBA{255, 255, 255, 255}
	gradientFrom     = color.NRGBA{0, 0, 0, 0}
	gradientTo       = color.NRGBA{0, 0, 0, 255}
)

// A FontSet holds the two weights a card uses: bold for the quote and
// the identity letter, light for the attribution.
type FontSet struct {
	Bold  *truetype.Font
	Light *truetype.Font
}

// LoadFontSet parses bold and light font data (TTF) into a FontSet.
func LoadFontSet(bold, light []byte) (*FontSet, error) {
	b, err := truetype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("%w: bold weight: %v", ErrBadFont, err)
	}
	l, err := truetype.Parse(light)
	if err != nil {
		return nil, fmt.Errorf("%w: light weight: %v", ErrBadFont, err)
	}
	return &FontSet{Bold: b, Light: l}, nil
}

// DefaultFontSet builds a set from the embedded Go fonts.
func DefaultFontSet() *FontSet {
	fs, err := LoadFontSet(gobold.TTF, goregular.TTF)
	if err != nil {
		// The embedded fonts always parse.
		panic(err)
	}
	return fs
}

// An AvatarSource supplies the avatar pixels. It is a closed set:
// AvatarBytes, AvatarFile, or AvatarIdentity.
type AvatarSource interface {
	avatarSource()
}

// AvatarBytes is an encoded image held in memory.
type AvatarBytes []byte

// AvatarFile is a path to an encoded image on disk.
type AvatarFile string

// AvatarIdentity asks for a generated avatar: a colored circle picked by
// ID with the first letter of Name inside it. Name must not be empty.
type AvatarIdentity struct {
	ID   uint64
	Name string
}

func (AvatarBytes) avatarSource()    {}
func (AvatarFile) avatarSource()     {}
func (AvatarIdentity) avatarSource() {}

// Config carries producer-level settings. Zero fields take the package
// defaults, so Config{} is a valid configuration.
type Config struct {
	// Width and Height are the output canvas dimensions.
	Width  int
	Height int
	// FontScale is the pixel scale of the quote text. The attribution
	// is rendered at FontScale / 3.
	FontScale float64
	// Fonts supplies the two weights; nil selects DefaultFontSet.
	Fonts *FontSet
}

// A Producer renders quote cards. It is immutable after construction and
// safe to reuse across renders.
type Producer struct {
	width     int
	height    int
	fontScale float64
	fonts     *FontSet
}

// NewProducer builds a Producer, filling unset Config fields with the
// package defaults.
func NewProducer(cfg Config) *Producer {
	p := &Producer{
		width:     cfg.Width,
		height:    cfg.Height,
		fontScale: cfg.FontScale,
		fonts:     cfg.Fonts,
	}
	if p.width == 0 {
		p.width = DefaultWidth
	}
	if p.height == 0 {
		p.height = DefaultHeight
	}
	if p.fontScale == 0 {
		p.fontScale = DefaultFontScale
	}
	if p.fonts == nil {
		p.fonts = DefaultFontSet()
	}
	return p
}

// A Card describes one image to render.
type Card struct {
	Quote       string
	Attribution string
	Avatar      AvatarSource
}

// MakeImage renders card and encodes it as JPEG. Identical producer
// configuration and card inputs produce identical bytes.
func (p *Producer) MakeImage(card Card) ([]byte, error) {
	img, err := p.Render(card)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// Render composes card onto a fresh canvas: background, then avatar at
// the origin, then the gradient strip flush with the avatar's right
// edge, then the text region. Any stage failure aborts the whole render.
func (p *Producer) Render(card Card) (*image.RGBA, error) {
	if p.width < 1 || p.height < 1 {
		return nil, fmt.Errorf("%w: canvas %dx%d", ErrBadConfig, p.width, p.height)
	}

	bg := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(bg, bg.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	avatar, err := p.resolveAvatar(card.Avatar)
	if err != nil {
		return nil, err
	}
	overlay(bg, avatar, 0, 0)

	avatarWidth := avatar.Bounds().Dx()
	gradientWidth := avatarWidth / gradientWidthDivisor
	overlay(bg, horizontalGradient(gradientWidth, p.height, gradientFrom, gradientTo), avatarWidth-gradientWidth, 0)

	regionW := p.width - avatarWidth
	if regionW <= 0 {
		return nil, fmt.Errorf("%w: avatar width %d leaves no text region on a %d wide canvas", ErrBadConfig, avatarWidth, p.width)
	}
	limit := regionW - textGap*2
	if limit <= 0 {
		return nil, fmt.Errorf("%w: text region %dpx is too narrow to wrap into", ErrBadConfig, regionW)
	}

	quoteStyle := TextStyle{
		Text:  card.Quote,
		Color: quoteColor,
		Scale: p.fontScale,
		Font:  p.fonts.Bold,
	}
	attrStyle := TextStyle{
		Text:  card.Attribution,
		Color: attributionColor,
		Scale: p.fontScale / attributionScaleDivisor,
		Font:  p.fonts.Light,
	}

	layout, err := WrapText(quoteStyle, limit)
	if err != nil {
		return nil, err
	}
	overlay(bg, renderTextRegion(layout, quoteStyle, attrStyle, regionW, p.height), avatarWidth, 0)

	return bg, nil
}

// resolveAvatar dispatches the avatar source once into a canvas-ready
// image. Decoding stays here so the compositors never touch I/O.
func (p *Producer) resolveAvatar(src AvatarSource) (image.Image, error) {
	switch s := src.(type) {
	case AvatarBytes:
		img, _, err := image.Decode(bytes.NewReader(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
		}
		return avatarFromImage(img, p.height, true)
	case AvatarFile:
		img, err := loadImage(string(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadImage, s, err)
		}
		return avatarFromImage(img, p.height, true)
	case AvatarIdentity:
		if s.Name == "" {
			return nil, fmt.Errorf("%w: identity avatar needs a display name", ErrBadConfig)
		}
		label := TextStyle{
			Text:  s.Name,
			Color: identityInkColor,
			Scale: identityLetterScale,
			Font:  p.fonts.Bold,
		}
		img := identityAvatar(s.ID, p.width/identityCanvasDivisor, p.height, label)
		return avatarFromImage(img, p.height, false)
	case nil:
		return nil, fmt.Errorf("%w: no avatar source", ErrBadConfig)
	default:
		return nil, fmt.Errorf("%w: unknown avatar source %T", ErrBadConfig, src)
	}
}

func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, err
	}

	return img, nil
}
