package report

import (
	"fmt"
	"io"
	"log"

	"github.com/Subeshan707/medexplain-ai/internal/imaging"
)

// Reporter samples the top-left pixel of an image file
type Reporter struct {
	logger *log.Logger
}

// New creates a Reporter that writes debug output to logger.
// A nil logger discards it.
func New(logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Reporter{logger: logger}
}

// Detect loads the image at path and returns the RGB color of the pixel at (0,0).
func (r *Reporter) Detect(path string) (imaging.RGBColor, error) {
	img, info, err := imaging.Load(path)
	if err != nil {
		return imaging.RGBColor{}, err
	}
	r.logger.Printf("Decoded %s image %dx%d from %s", info.Format, info.Width, info.Height, path)

	c, err := imaging.SampleRGB(img, 0, 0)
	if err != nil {
		return imaging.RGBColor{}, err
	}

	hsl := c.HSL()
	r.logger.Printf("Top-left pixel rgb(%d,%d,%d) hsl(%d,%d%%,%d%%)", c.R, c.G, c.B, hsl.H, hsl.S, hsl.L)
	return c, nil
}

// Line returns the report line for path, without a trailing newline.
func (r *Reporter) Line(path string) string {
	c, err := r.Detect(path)
	if err != nil {
		return FormatError(err)
	}
	return Format(c)
}

// Run writes the report line for path to w.
func (r *Reporter) Run(w io.Writer, path string) {
	if _, err := fmt.Fprintln(w, r.Line(path)); err != nil {
		r.logger.Printf("Failed to write report: %v", err)
	}
}

// Format renders a detected color.
func Format(c imaging.RGBColor) string {
	return "Color detected: " + c.Hex()
}

// FormatError renders a failure.
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
