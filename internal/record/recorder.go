// Package record captures simulation frames into an MJPEG-encoded AVI file.
// Recording is strictly best-effort: every failure is returned as a value
// and never interrupts the simulation itself.
package record

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	"github.com/icza/mjpeg"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// captureFPS is the fixed playback rate of recorded files.
const captureFPS = 30

// pixelScale enlarges each grid cell to a small square so recordings stay
// legible at typical grid sizes.
const pixelScale = 2

// jpegQuality trades file size against compression artifacts on the thin
// branch structures.
const jpegQuality = 90

// Recorder writes one AVI file per recording session. Start and Stop bound
// the session; CaptureFrame appends a frame when the pacer allows one.
type Recorder struct {
	writer mjpeg.AviWriter
	path   string
	width  int
	height int
	pace   *pacer
	frames int
}

// New returns an idle recorder.
func New() *Recorder {
	return &Recorder{}
}

// Recording reports whether a session is open.
func (r *Recorder) Recording() bool { return r.writer != nil }

// Frames returns the number of frames captured in the current session.
func (r *Recorder) Frames() int { return r.frames }

// Path returns the output filename of the current session.
func (r *Recorder) Path() string { return r.path }

// Start opens an AVI file sized for the given simulation grid.
func (r *Recorder) Start(path string, gridWidth, gridHeight int) error {
	if r.writer != nil {
		return fmt.Errorf("already recording to %s", r.path)
	}

	w := int32(gridWidth * pixelScale)
	h := int32(gridHeight * pixelScale)
	writer, err := mjpeg.New(path, w, h, captureFPS)
	if err != nil {
		return fmt.Errorf("create video file: %w", err)
	}

	r.writer = writer
	r.path = path
	r.width = gridWidth
	r.height = gridHeight
	r.pace = newPacer(captureFPS)
	r.frames = 0
	return nil
}

// ShouldCapture reports whether the pacer has accumulated a frame interval.
func (r *Recorder) ShouldCapture() bool {
	return r.writer != nil && r.pace.shouldCapture()
}

// CaptureFrame renders the grid to an RGBA image through the color LUT and
// appends it as a JPEG frame.
func (r *Recorder) CaptureFrame(s *sim.Simulation, lut *render.LUT, colorByValue bool, mode sim.ColorMode, invert bool) error {
	if r.writer == nil {
		return fmt.Errorf("not recording")
	}

	img := r.renderFrame(s, lut, colorByValue, mode, invert)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	if err := r.writer.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	r.frames++
	return nil
}

// Stop finalizes the AVI file and returns its path.
func (r *Recorder) Stop() (string, error) {
	if r.writer == nil {
		return "", fmt.Errorf("not recording")
	}
	path := r.path
	err := r.writer.Close()
	r.writer = nil
	r.path = ""
	r.pace = nil
	if err != nil {
		return "", fmt.Errorf("finalize video file: %w", err)
	}
	return path, nil
}

func (r *Recorder) renderFrame(s *sim.Simulation, lut *render.LUT, colorByValue bool, mode sim.ColorMode, invert bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width*pixelScale, r.height*pixelScale))

	invNumParticles := 1.0 / float64(max(s.NumParticles, 1))
	maxRadius := math.Max(s.MaxRadius, 1.0)
	highlight := s.Settings.HighlightRecent
	stuck := s.ParticlesStuck

	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			p, ok := s.GetParticle(x, y)
			if !ok {
				continue
			}

			var c color.RGBA
			switch {
			case highlight > 0 && p.Age+highlight >= stuck:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			case colorByValue:
				var value float64
				switch mode {
				case sim.ColorByDistance:
					value = p.Distance / maxRadius
				case sim.ColorByDensity:
					value = float64(p.NeighborCount) / 8.0
				case sim.ColorByDirection:
					value = (p.Direction + math.Pi) / (2 * math.Pi)
				default:
					value = float64(p.Age) * invNumParticles
				}
				if invert {
					value = 1 - value
				}
				c = lut.At(value)
			default:
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}

			for dy := 0; dy < pixelScale; dy++ {
				for dx := 0; dx < pixelScale; dx++ {
					img.SetRGBA(x*pixelScale+dx, y*pixelScale+dy, c)
				}
			}
		}
	}

	return img
}
