package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindows(t *testing.T) {
	ws, err := parseWindows(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}, ws)

	ws, err = parseWindows([]string{"100", " 7"})
	require.NoError(t, err)
	assert.Equal(t, []int{100, 7}, ws)

	_, err = parseWindows([]string{"0"})
	assert.Error(t, err)
	_, err = parseWindows([]string{"abc"})
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	rows, err := analyze(options{
		irLen:      1000,
		sampleRate: 48000,
		backend:    "gonum",
		mode:       "cross",
		windows:    []int{24, 1024},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1024, rows[0].padded)
	assert.Equal(t, 24, rows[0].latency)
	assert.InDelta(t, 0.5, rows[0].latencyMs, 1e-12)
	assert.Equal(t, 4*engineBytes(1000, 24, 1024), rows[0].bytes)
	assert.Zero(t, rows[0].nsPerFrame)

	assert.Equal(t, 2048, rows[1].padded)
}

func TestAnalyzeMeasure(t *testing.T) {
	rows, err := analyze(options{
		irLen:      64,
		sampleRate: 44100,
		backend:    "algofft",
		mode:       "mono",
		measure:    true,
		windows:    []int{32},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 128, rows[0].padded)
	assert.Positive(t, rows[0].nsPerFrame)
}

func TestAnalyzeRejectsBadOptions(t *testing.T) {
	base := options{irLen: 10, sampleRate: 48000, backend: "algofft", mode: "stereo", windows: []int{8}}

	bad := base
	bad.backend = "fftw"
	_, err := analyze(bad)
	assert.ErrorContains(t, err, "unknown backend")

	bad = base
	bad.mode = "surround"
	_, err = analyze(bad)
	assert.ErrorContains(t, err, "unknown mode")

	bad = base
	bad.irLen = 0
	_, err = analyze(bad)
	assert.Error(t, err)
}

func TestPrintRows(t *testing.T) {
	var out bytes.Buffer
	rows := []row{{window: 256, padded: 512, latency: 256, latencyMs: 5.333, bytes: 2048, nsPerFrame: 12.5}}

	require.NoError(t, printRows(&out, 200, "stereo", rows, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Cost [ns/frame]")
	assert.Equal(t, []string{"256", "200", "stereo", "512", "256", "5.33", "2.0", "12.5"}, strings.Fields(lines[2]))
}
