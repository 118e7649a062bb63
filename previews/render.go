package previews

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"gitlab.com/begraf/ikonwerk/data/icon"
	"gitlab.com/begraf/ikonwerk/filesystem"
)

type Options struct {
	OutputDirectory string
	Width           int
}

// RenderAll rasterizes every source icon into a PNG preview. Failures are
// logged per icon rather than aborting: previews are an authoring aid, not a
// distribution artifact.
func RenderAll(icons []*icon.Icon, opts Options) error {
	if err := filesystem.CreateDirectoryIfNotExists(opts.OutputDirectory); err != nil {
		return fmt.Errorf("could not ensure preview directory: %w", err)
	}

	var wg sync.WaitGroup
	work := make(chan *icon.Icon)

	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func(work <-chan *icon.Icon) {
			defer wg.Done()
			for ic := range work {
				outPath := filepath.Join(opts.OutputDirectory, ic.Name+".png")

				if err := renderPreview(ic, outPath, opts.Width); err != nil {
					log.Printf("preview '%s' failed: %s", ic.Name, err)
					continue
				}

				log.Printf("rendered preview '%s.png'", ic.Name)
			}
		}(work)
	}

	for _, ic := range icons {
		work <- ic
	}
	close(work)

	wg.Wait()

	return nil
}

func renderPreview(ic *icon.Icon, outPath string, width int) error {
	svg, err := oksvg.ReadIconStream(bytes.NewReader(ic.Source))
	if err != nil {
		return fmt.Errorf("parse svg: %w", err)
	}

	w := int(svg.ViewBox.W)
	h := int(svg.ViewBox.H)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("svg has no usable viewBox")
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, canvas, canvas.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)

	svg.SetTarget(0, 0, float64(w), float64(h))
	svg.Draw(raster, 1.0)

	preview := imaging.Resize(canvas, width, 0, imaging.Lanczos)

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return imaging.Encode(out, preview, imaging.PNG)
}
