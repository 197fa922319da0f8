// Command giftorio is a reference host for the giftorio library: it
// decodes a GIF file, runs it through the pipeline, and copies the
// resulting blueprint string to the clipboard.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"log"
	"os"

	"golang.design/x/clipboard"

	"github.com/colinchilds/giftorio-go"
)

func main() {
	fps := flag.Int("fps", 15, "target output frame rate, 1-60")
	maxSize := flag.Int("max-size", 50, "maximum lamp grid side length, 2-300")
	grayBits := flag.Int("gray-bits", 0, "grayscale depth: 0 (full colour), 4, or 8")
	expansion := flag.Bool("expansion", false, "use the expansion signal catalogue")
	quality := flag.String("quality", "normal", "power tier: none, normal, uncommon, rare, epic, legendary")
	label := flag.String("label", "", "blueprint label")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: giftorio [flags] <file.gif>")
		os.Exit(2)
	}

	q, err := parseQuality(*quality)
	if err != nil {
		log.Fatal(err)
	}

	frames, err := loadGIF(flag.Arg(0))
	if err != nil {
		log.Fatalf("loading %s: %v", flag.Arg(0), err)
	}

	cfg := giftorio.Config{
		TargetFPS:         *fps,
		MaxSize:           *maxSize,
		GrayscaleBits:     *grayBits,
		UseExpansion:      *expansion,
		SubstationQuality: q,
		Label:             *label,
	}

	bp, err := giftorio.Make(frames, cfg, progressBar)
	if err != nil {
		log.Fatalf("giftorio.Make: %v", err)
	}
	fmt.Fprintln(os.Stderr)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable, printing blueprint string instead: %v", err)
		fmt.Println(bp)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(bp))
	log.Printf("blueprint copied to clipboard (%d bytes)", len(bp))
}

func progressBar(percent int, status string) giftorio.Signal {
	const width = 30
	filled := width * percent / 100
	fmt.Fprintf(os.Stderr, "\r[%s%s] %3d%% %-12s",
		repeat("=", filled), repeat(" ", width-filled), percent, status)
	return giftorio.Continue
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func parseQuality(s string) (giftorio.SubstationQuality, error) {
	switch s {
	case "none":
		return giftorio.QualityNone, nil
	case "normal":
		return giftorio.QualityNormal, nil
	case "uncommon":
		return giftorio.QualityUncommon, nil
	case "rare":
		return giftorio.QualityRare, nil
	case "epic":
		return giftorio.QualityEpic, nil
	case "legendary":
		return giftorio.QualityLegendary, nil
	default:
		return 0, fmt.Errorf("unrecognized quality %q", s)
	}
}

func loadGIF(path string) ([]giftorio.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, err
	}

	frames := make([]giftorio.Frame, len(g.Image))
	bounds := g.Image[0].Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	canvas := image.NewRGBA(bounds)

	for i, pal := range g.Image {
		draw(canvas, pal)
		rgba := make([]byte, w*h*4)
		copy(rgba, canvas.Pix)
		delay := g.Delay[i]
		if delay <= 0 {
			delay = 1
		}
		frames[i] = giftorio.Frame{RGBA: rgba, W: w, H: h, Delay: delay}
	}
	return frames, nil
}

// draw composites one GIF frame's palette image onto canvas in place,
// since GIF frames are commonly partial and rely on the previous
// frame showing through.
func draw(canvas *image.RGBA, pal *image.Paletted) {
	b := pal.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := pal.At(x, y)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue // transparent: keep the previous frame's pixel
			}
			canvas.Set(x, y, c)
		}
	}
}
