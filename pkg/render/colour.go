package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrParseColour is returned for text that does not describe a colour.
var ErrParseColour = errors.New("invalid colour")

// Colour is a 24-bit RGB colour.
type Colour struct {
	R, G, B uint8
}

// Common colours.
var (
	Black = Greyscale(0)
	White = Greyscale(255)
)

// RGB creates a Colour from its channels.
func RGB(r, g, b uint8) Colour {
	return Colour{r, g, b}
}

// Greyscale creates a Colour with all three channels set to v.
func Greyscale(v uint8) Colour {
	return Colour{v, v, v}
}

// HSV creates a Colour from hue, saturation and value, each scaled so that
// 0-255 covers the full range. Channels are rounded to the nearest integer.
func HSV(h, s, v uint8) Colour {
	hue := math.Mod(float64(h)/255*360, 360)
	c := colorful.Hsv(hue, float64(s)/255, float64(v)/255)
	r, g, b := c.RGB255()
	return Colour{r, g, b}
}

// Add returns the channel-wise sum, saturating at 255.
func (c Colour) Add(o Colour) Colour {
	return Colour{addSat(c.R, o.R), addSat(c.G, o.G), addSat(c.B, o.B)}
}

// Scale multiplies every channel by f, rounding and clamping to 0-255.
func (c Colour) Scale(f float64) Colour {
	return Colour{scaleChannel(c.R, f), scaleChannel(c.G, f), scaleChannel(c.B, f)}
}

// Blend mixes c towards o by t in [0, 1], interpolating in Lab space.
func (c Colour) Blend(o Colour, t float64) Colour {
	r, g, b := c.colorful().BlendLab(o.colorful(), t).Clamped().RGB255()
	return Colour{r, g, b}
}

func (c Colour) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func (c Colour) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// ParseColour reads a colour written as "r,g,b". Spaces are ignored.
func ParseColour(s string) (Colour, error) {
	parts := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	if len(parts) != 3 {
		return Colour{}, fmt.Errorf("%w %q: want three comma-separated channels (r,g,b), got %d", ErrParseColour, s, len(parts))
	}

	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("%w %q: channel %d (%q) is not a number in 0-255", ErrParseColour, s, i, p)
		}
		ch[i] = uint8(n)
	}
	return Colour{ch[0], ch[1], ch[2]}, nil
}

func addSat(a, b uint8) uint8 {
	if s := int(a) + int(b); s < 256 {
		return uint8(s)
	}
	return 255
}

func scaleChannel(v uint8, f float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(float64(v)*f))))
}
