// SPDX-License-Identifier: MIT
// chromatrix applies brightness / saturation / hue adjustments to an image
// through composed 4×4 color matrices, and optionally renders the response
// curves of the configured transform.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/chromatrix/chroma"
	"github.com/katalvlaran/chromatrix/chromaplot"
	"github.com/katalvlaran/chromatrix/imagefx"
	"github.com/katalvlaran/chromatrix/matrix"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// presetsByName maps the -luma flag spelling to a named preset.
var presetsByName = map[string]chroma.Preset{
	"hdtv":    chroma.PresetHDTV,
	"led":     chroma.PresetLED,
	"crt":     chroma.PresetCRT,
	"ntsc":    chroma.PresetNTSC,
	"average": chroma.PresetAverage,
}

// config carries every parsed flag.
type config struct {
	inPath, outPath  string
	brightness       float64
	saturation       float64
	hueRadians       float64
	lumaOpt          chroma.Option
	plotSat, plotHue string
}

func main() {
	var (
		inPath     = flag.String("in", "", "input image path (png, jpg, gif, tif, bmp)")
		outPath    = flag.String("out", "", "output image path; encoder follows the extension")
		brightness = flag.Float64("brightness", 1.0, "channel scale factor; 1 keeps the image")
		saturation = flag.Float64("saturation", 1.0, "0 = grayscale, 1 = unchanged, >1 oversaturates")
		hueDeg     = flag.Float64("hue", 0.0, "hue rotation in degrees around the luma axis")
		lumaSpec   = flag.String("luma", "hdtv", "luma preset (hdtv|led|crt|ntsc|average) or custom \"r,g,b\"")
		plotSat    = flag.String("plot-sat", "", "optional path for the saturation response plot")
		plotHue    = flag.String("plot-hue", "", "optional path for the hue response plot")
		version    = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Printf("chromatrix %s (commit %s)\n", Version, GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	lumaOpt, err := parseLuma(*lumaSpec)
	if err != nil {
		log.Fatalf("chromatrix: %v", err)
	}

	cfg := config{
		inPath:     *inPath,
		outPath:    *outPath,
		brightness: *brightness,
		saturation: *saturation,
		hueRadians: *hueDeg * math.Pi / 180.0,
		lumaOpt:    lumaOpt,
		plotSat:    *plotSat,
		plotHue:    *plotHue,
	}
	if err = run(cfg); err != nil {
		log.Fatalf("chromatrix: %v", err)
	}
}

// parseLuma resolves the -luma flag: a preset name, or a custom "r,g,b"
// triple of floats.
func parseLuma(spec string) (chroma.Option, error) {
	if p, ok := presetsByName[strings.ToLower(spec)]; ok {
		return chroma.WithPreset(p), nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("bad -luma %q: want a preset name or three comma-separated weights", spec)
	}
	var w [3]float64
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("bad -luma weight %q: %w", s, err)
		}
		w[i] = v
	}

	return chroma.WithLuma(chroma.LumaVector{R: w[0], G: w[1], B: w[2]}), nil
}

func run(cfg config) error {
	b := chroma.NewBuilder(cfg.lumaOpt)

	// Compose the full transform: brightness, then saturation, then hue.
	// Column-vector convention, so later stages multiply from the left.
	m := b.Brightness(cfg.brightness)
	m, err := matrix.Mul(b.Saturation(cfg.saturation), m)
	if err != nil {
		return err
	}
	hue, err := b.Hue(cfg.hueRadians)
	if err != nil {
		return err
	}
	if m, err = matrix.Mul(hue, m); err != nil {
		return err
	}

	probe := colorful.Color{R: 0.9, G: 0.5, B: 0.1} // default plot probe

	if cfg.inPath != "" {
		img, oerr := imagefx.Open(cfg.inPath)
		if oerr != nil {
			return oerr
		}
		log.Printf("loaded %s (%dx%d), luma preset %s",
			cfg.inPath, img.Bounds().Dx(), img.Bounds().Dy(), b.Preset())

		// Plot curves for the image's center pixel rather than the default.
		center := img.Bounds().Min.Add(img.Bounds().Size().Div(2))
		if c, ok := colorful.MakeColor(img.At(center.X, center.Y)); ok {
			probe = c
		}

		if cfg.outPath != "" {
			out, aerr := imagefx.Apply(img, m)
			if aerr != nil {
				return aerr
			}
			if serr := imagefx.Save(out, cfg.outPath); serr != nil {
				return serr
			}
			log.Printf("wrote %s", cfg.outPath)
		}
	}

	if cfg.plotSat != "" {
		if perr := chromaplot.SaturationPlot(b, probe, 0, cfg.plotSat); perr != nil {
			return perr
		}
		log.Printf("wrote %s", cfg.plotSat)
	}
	if cfg.plotHue != "" {
		if perr := chromaplot.HuePlot(b, probe, 0, cfg.plotHue); perr != nil {
			return perr
		}
		log.Printf("wrote %s", cfg.plotHue)
	}

	if cfg.inPath == "" && cfg.plotSat == "" && cfg.plotHue == "" {
		flag.Usage()
		return fmt.Errorf("nothing to do: pass -in/-out or a -plot-* path")
	}

	return nil
}
