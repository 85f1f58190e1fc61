// Command convinfo reports latency, transform size and memory footprint of
// streaming convolver configurations.
//
// Usage:
//
//	convinfo [flags] [window-size ...]
//
// Without arguments it reports every power-of-two window from 32 to 8192.
//
// Examples:
//
//	convinfo -ir 96000
//	convinfo -ir 4096 -mode cross 256 512 1024
//	convinfo -ir 48000 -measure -backend gonum 1024
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stconv/dsp/conv"
	"github.com/cwbudde/algo-stconv/dsp/spectral"
)

var backends = map[string]spectral.Backend{
	"algofft": spectral.AlgoFFT,
	"gonum":   spectral.Gonum,
}

// engines per mode
var modes = map[string]int{
	"mono":   1,
	"stereo": 2,
	"cross":  4,
}

type options struct {
	irLen      int
	sampleRate float64
	backend    string
	mode       string
	measure    bool
	windows    []int
}

type row struct {
	window     int
	padded     int
	latency    int
	latencyMs  float64
	bytes      int
	nsPerFrame float64 // zero unless measured
}

func main() {
	irLen := flag.Int("ir", 48000, "impulse response length in samples")
	rate := flag.Float64("rate", 48000, "sample rate in Hz, for latency in milliseconds")
	backend := flag.String("backend", "algofft", "transform backend: algofft or gonum")
	mode := flag.String("mode", "mono", "engine layout: mono, stereo or cross")
	measure := flag.Bool("measure", false, "time Compute on a noise signal")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: convinfo [flags] [window-size ...]\n\n")
		fmt.Fprintf(os.Stderr, "Reports latency and memory of streaming convolver configurations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  convinfo -ir 96000\n")
		fmt.Fprintf(os.Stderr, "  convinfo -ir 4096 -mode cross 256 512 1024\n")
		fmt.Fprintf(os.Stderr, "  convinfo -ir 48000 -measure -backend gonum 1024\n")
	}
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	windows, err := parseWindows(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	rows, err := analyze(options{
		irLen:      *irLen,
		sampleRate: *rate,
		backend:    *backend,
		mode:       *mode,
		measure:    *measure,
		windows:    windows,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printRows(os.Stdout, *irLen, *mode, rows, *measure); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func parseWindows(args []string) ([]int, error) {
	if len(args) == 0 {
		var ws []int
		for w := 32; w <= 8192; w *= 2 {
			ws = append(ws, w)
		}
		return ws, nil
	}

	ws := make([]int, 0, len(args))
	for _, a := range args {
		w, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid window size %q", a)
		}
		ws = append(ws, w)
	}
	return ws, nil
}

func analyze(opts options) ([]row, error) {
	backend, ok := backends[opts.backend]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q", opts.backend)
	}
	engines, ok := modes[opts.mode]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", opts.mode)
	}
	if opts.irLen <= 0 {
		return nil, errors.New("impulse response length must be positive")
	}

	ir := decayingIR(opts.irLen)
	cache := spectral.NewCache(backend, nil)

	rows := make([]row, 0, len(opts.windows))
	for _, w := range opts.windows {
		f, padded, err := build(opts.mode, ir, w, cache)
		if err != nil {
			return nil, err
		}

		r := row{
			window:    w,
			padded:    padded,
			latency:   w,
			latencyMs: 1000 * float64(w) / opts.sampleRate,
			bytes:     engines * engineBytes(opts.irLen, w, padded),
		}
		if opts.measure {
			r.nsPerFrame = timeCompute(f, 4*padded)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func build(mode string, ir []float64, window int, cache *spectral.Cache) (conv.StereoFilter, int, error) {
	switch mode {
	case "mono":
		c, err := conv.New(ir, window, conv.WithPlanner(cache))
		if err != nil {
			return nil, 0, err
		}
		return monoAsStereo{c}, c.InternalBufferSize(), nil
	case "stereo":
		s, err := conv.NewStereo(ir, ir, window, conv.WithPlanner(cache))
		if err != nil {
			return nil, 0, err
		}
		return s, s.InternalBufferSize(), nil
	default:
		x, err := conv.NewCrossCoupled(ir, ir, ir, ir, window, conv.WithPlanner(cache))
		if err != nil {
			return nil, 0, err
		}
		return x, x.InternalBufferSize(), nil
	}
}

// monoAsStereo drives a mono engine from the left input only.
type monoAsStereo struct{ c *conv.Convolver }

func (m monoAsStereo) Compute(l, _ float64) (float64, float64) { return m.c.Compute(l), 0 }
func (m monoAsStereo) Clear() { m.c.Clear() }

// engineBytes estimates the heap held by one engine: IR taps, IR spectrum,
// per-block scratch, overlap-add window and input staging.
func engineBytes(irLen, window, padded int) int {
	const f64, c128 = 8, 16
	return irLen*f64 + 2*padded*c128 + 2*padded*f64 + 2*window*f64
}

func timeCompute(f conv.StereoFilter, frames int) float64 {
	x := 0.3
	start := time.Now()
	for i := range frames {
		// Cheap deterministic pseudo-noise.
		x = 4 * x * (1 - x)
		f.Compute(x-0.5, float64(i%7)/7-0.5)
	}
	elapsed := time.Since(start)
	f.Clear()
	return float64(elapsed.Nanoseconds()) / float64(frames)
}

func decayingIR(n int) []float64 {
	ir := make([]float64, n)
	ir[0] = 1
	decay := 1.0
	for i := 1; i < n; i++ {
		decay *= 0.9995
		ir[i] = decay * float64((i*7919)%13-6) / 6
	}
	return ir
}

func printRows(out io.Writer, irLen int, mode string, rows []row, measured bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	header := "Window\tIR\tMode\tFFT Size\tLatency [samples]\tLatency [ms]\tMemory [KiB]"
	rule := "------\t--\t----\t--------\t-----------------\t------------\t------------"
	if measured {
		header += "\tCost [ns/frame]"
		rule += "\t---------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return err
	}

	for _, r := range rows {
		line := fmt.Sprintf("%d\t%d\t%s\t%d\t%d\t%.2f\t%.1f",
			r.window, irLen, mode, r.padded, r.latency, r.latencyMs, float64(r.bytes)/1024)
		if measured {
			line += fmt.Sprintf("\t%.1f", r.nsPerFrame)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}
