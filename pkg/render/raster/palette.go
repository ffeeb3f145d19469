package raster

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrPalette is returned by [ParsePalette] for malformed palette strings.
// A palette needs exactly four comma-separated RGB or RGBA hex colors.
var ErrPalette = errors.New("invalid palette")

// Palette holds the four colors of a rendered maze. Path is reserved for a
// solution-highlight overlay and is not consumed by [Render] itself; it is
// carried so palette strings stay compatible with tools that do draw paths.
type Palette struct {
	Background color.Color
	Wall       color.Color
	Passage    color.Color
	Path       color.Color
}

// DefaultPalette returns the stock look: black background, light-grey
// walls, near-black passages and a green path highlight.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{A: 0xFF},
		Wall:       color.NRGBA{R: 0xCF, G: 0xCF, B: 0xCF, A: 0xFF},
		Passage:    color.NRGBA{R: 0x1B, G: 0x1B, B: 0x1B, A: 0xFF},
		Path:       color.NRGBA{R: 0x32, G: 0x82, B: 0x32, A: 0xFF},
	}
}

// ParsePalette parses "bg,wall,passage,path" where each entry is an RRGGBB
// or RRGGBBAA hex string, e.g. "000000,CFCFCF,1B1B1B,328232".
func ParsePalette(s string) (Palette, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Palette{}, fmt.Errorf("%w: need 4 colors (bg,wall,passage,path), got %d", ErrPalette, len(parts))
	}

	var colors [4]color.Color
	for i, part := range parts {
		c, err := parseHexColor(strings.TrimSpace(part))
		if err != nil {
			return Palette{}, err
		}
		colors[i] = c
	}
	return Palette{
		Background: colors[0],
		Wall:       colors[1],
		Passage:    colors[2],
		Path:       colors[3],
	}, nil
}

func parseHexColor(s string) (color.Color, error) {
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("%w: %q must be an RGB or RGBA hex string", ErrPalette, s)
	}
	var bytes [4]uint8
	bytes[3] = 0xFF
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q must be an RGB or RGBA hex string", ErrPalette, s)
		}
		bytes[i] = uint8(v)
	}
	return color.NRGBA{R: bytes[0], G: bytes[1], B: bytes[2], A: bytes[3]}, nil
}
