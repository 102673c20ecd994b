package slide

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next frame Host.Draw renders.
// The PNG lands in ScreenshotDir as <timestamp>_<label>.png.
func (h *Host) Screenshot(label string) {
	h.screenshotQueue = append(h.screenshotQueue, label)
}

// PendingScreenshots returns the number of queued captures.
func (h *Host) PendingScreenshots() int { return len(h.screenshotQueue) }

// flushScreenshots writes the frame once per queued label. Failures are
// reported on stderr and never interrupt drawing.
func (h *Host) flushScreenshots(screen *ebiten.Image) {
	if len(h.screenshotQueue) == 0 {
		return
	}
	defer func() { h.screenshotQueue = h.screenshotQueue[:0] }()

	if err := os.MkdirAll(h.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[slide] screenshot: mkdir %s: %v\n", h.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := h.now().Format("20060102_150405")
	for _, label := range h.screenshotQueue {
		path := filepath.Join(h.ScreenshotDir, stamp+"_"+sanitizeLabel(label)+".png")
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[slide] screenshot: %v\n", err)
			continue
		}
		h.logf("screenshot: wrote %s", path)
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
