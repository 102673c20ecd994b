package slide

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Config.Normalize and ConfigFromAttributes.
const (
	DefaultText        = "Slide to Accept"
	DefaultSuccessText = "✅ Accepteret!"
	DefaultWidth       = 300.0
	DefaultHeight      = 60.0
	DefaultThreshold   = 0.8
)

var (
	// DefaultTrackColor is the fill color behind the handle (#4CAF50).
	DefaultTrackColor = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	// DefaultHandleColor is the handle color (white).
	DefaultHandleColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// DefaultBackground is the clear color used by the demo window.
	DefaultBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x28, A: 0xff}
)

// Length is a track length that is either an absolute pixel value or a
// fraction of the space the widget is laid out in.
type Length struct {
	Value    float64 // pixels, or a fraction in [0, 1] when Relative
	Relative bool
}

// Pixels returns an absolute length.
func Pixels(v float64) Length { return Length{Value: v} }

// Percent returns a relative length; Percent(50) spans half the parent.
func Percent(p float64) Length { return Length{Value: p / 100, Relative: true} }

// ParseLength parses a width attribute. "300" and "300px" are absolute,
// "50%" is relative. Anything without a leading number is treated as 100%
// relative, so the real width has to be measured. An empty string yields
// the default width.
func ParseLength(s string) Length {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pixels(DefaultWidth)
	}
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil || math.IsNaN(p) || p < 0 {
			return Percent(100)
		}
		return Percent(p)
	}
	v, ok := leadingNumber(s)
	if !ok {
		return Percent(100)
	}
	return Pixels(v)
}

// Resolve converts the length to pixels inside a parent of the given size.
func (l Length) Resolve(parent float64) float64 {
	if l.Relative {
		return l.Value * parent
	}
	return l.Value
}

// String formats the length the way ParseLength accepts it.
func (l Length) String() string {
	if l.Relative {
		return strconv.FormatFloat(l.Value*100, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64)
}

// leadingNumber parses the longest numeric prefix of s, like a lenient
// parseInt/parseFloat ("60px" -> 60).
func leadingNumber(s string) (float64, bool) {
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || c == '.' || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	for end > 0 {
		v, err := strconv.ParseFloat(s[:end], 64)
		if err == nil {
			return v, true
		}
		end--
	}
	return 0, false
}

// Config describes one render cycle of a widget. Zero fields are replaced by
// defaults in Normalize.
type Config struct {
	Text        string
	SuccessText string
	Width       Length
	Height      float64
	TrackColor  color.RGBA
	HandleColor color.RGBA
	// Threshold is the fraction of the travel distance the handle must reach
	// to complete. Values outside (0, 1] are corrected by Normalize.
	Threshold float64
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() Config {
	return Config{}.Normalize()
}

// Normalize returns a copy of c with defaults applied to missing or invalid
// fields.
func (c Config) Normalize() Config {
	if c.Text == "" {
		c.Text = DefaultText
	}
	if c.SuccessText == "" {
		c.SuccessText = DefaultSuccessText
	}
	if !c.Width.Relative && (c.Width.Value <= 0 || math.IsNaN(c.Width.Value) || math.IsInf(c.Width.Value, 0)) {
		c.Width = Pixels(DefaultWidth)
	}
	if c.Width.Relative && (c.Width.Value < 0 || math.IsNaN(c.Width.Value)) {
		c.Width = Percent(100)
	}
	if c.Height <= 0 || math.IsNaN(c.Height) || math.IsInf(c.Height, 0) {
		c.Height = DefaultHeight
	}
	if c.TrackColor == (color.RGBA{}) {
		c.TrackColor = DefaultTrackColor
	}
	if c.HandleColor == (color.RGBA{}) {
		c.HandleColor = DefaultHandleColor
	}
	c.Threshold = normalizeThreshold(c.Threshold)
	return c
}

// normalizeThreshold clamps f to (0, 1]. Non-positive and NaN values fall
// back to the default.
func normalizeThreshold(f float64) float64 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return DefaultThreshold
	case f > 1:
		return 1
	default:
		return f
	}
}

// Attribute names understood by ConfigFromAttributes.
const (
	AttrText        = "text"
	AttrSuccessText = "success-text"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrTrackColor  = "track-color"
	AttrHandleColor = "handle-color"
	AttrThreshold   = "threshold"
)

// ConfigFromAttributes builds a Config from string attributes. Missing or
// unparsable values fall back to defaults; this never fails.
func ConfigFromAttributes(attrs map[string]string) Config {
	var c Config
	c.Text = attrs[AttrText]
	c.SuccessText = attrs[AttrSuccessText]
	c.Width = ParseLength(attrs[AttrWidth])
	if v, ok := leadingNumber(strings.TrimSpace(attrs[AttrHeight])); ok {
		c.Height = math.Trunc(v)
	}
	if s := attrs[AttrTrackColor]; s != "" {
		if clr, err := ParseColor(s); err == nil {
			c.TrackColor = clr
		}
	}
	if s := attrs[AttrHandleColor]; s != "" {
		if clr, err := ParseColor(s); err == nil {
			c.HandleColor = clr
		}
	}
	if v, ok := leadingNumber(strings.TrimSpace(attrs[AttrThreshold])); ok {
		c.Threshold = v
	}
	return c.Normalize()
}

// Attributes returns c as attributes that ConfigFromAttributes maps back to
// the same config.
func (c Config) Attributes() map[string]string {
	c = c.Normalize()
	return map[string]string{
		AttrText:        c.Text,
		AttrSuccessText: c.SuccessText,
		AttrWidth:       c.Width.String(),
		AttrHeight:      strconv.FormatFloat(c.Height, 'f', -1, 64),
		AttrTrackColor:  FormatColor(c.TrackColor),
		AttrHandleColor: FormatColor(c.HandleColor),
		AttrThreshold:   strconv.FormatFloat(c.Threshold, 'f', -1, 64),
	}
}

// FormatColor formats clr as "#rrggbb", or "#rrggbbaa" when not opaque.
func FormatColor(clr color.RGBA) string {
	if clr.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", clr.R, clr.G, clr.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", clr.R, clr.G, clr.B, clr.A)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a CSS color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return color.RGBA{}, fmt.Errorf("parse color %q: want 3, 6 or 8 hex digits", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	if clr, ok := colornames.Map[strings.ToLower(s)]; ok {
		return clr, nil
	}
	return color.RGBA{}, fmt.Errorf("parse color %q: unknown color name", s)
}

// LoadConfigFile reads widget attributes from a YAML (.yaml, .yml) or TOML
// (.toml) file. Keys are the attribute names accepted by
// ConfigFromAttributes:
//
//	text: Slide to confirm
//	width: 50%
//	threshold: 0.9
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	raw := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("load config %s: unsupported extension %q", path, ext)
	}
	attrs := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		attrs[strings.ToLower(k)] = fmt.Sprint(v)
	}
	return ConfigFromAttributes(attrs), nil
}
