// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	cs "github.com/FlineDev/HandySwiftUI-sub000/internal"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/ops"
	_ "github.com/FlineDev/HandySwiftUI-sub000/internal/ops/adjust" // register operators for JSON decoding
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/rest"
	"github.com/klauspost/cpuid"
	"github.com/valyala/fastrand"
)

const version = "0.1.0"

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var memprofile = flag.String("memprofile", "", "write memory profile to `file`")

var out = flag.String("out", "", "save resulting palette to `file`. Suffix selects the format: .json, .txt, .hex, or a .jpg/.tiff swatch")
var log = flag.String("log", "%auto", "save log output to `file`. `%auto` replaces suffix of output file with .log")

var space = flag.String("space", "lch", "interpolation space, one of rgb, xyz, lab, lch, oklab, oklch")
var t = flag.Float64("t", 0.5, "interpolation parameter for lerp, 0=from, 1=to. Values outside [0,1] extrapolate")
var steps = flag.Int("steps", 4, "gradient steps between each pair of consecutive colors")

var amount = flag.Float64("amount", 15, "LCH lightness and chroma offset for accents")

var n = flag.Int("n", 8, "number of random colors")
var minL = flag.Float64("minL", 30, "minimum LCH lightness of random colors")
var maxL = flag.Float64("maxL", 80, "maximum LCH lightness of random colors")
var maxC = flag.Float64("maxC", 90, "maximum LCH chroma of random colors before gamut mapping")

var cell = flag.Int("cell", 64, "swatch cell size in pixels for image output")

var addr = flag.String("addr", ":8080", "listen address for serve")
var terminal = newSwatchPrinter()

var chroot = flag.String("chroot", "", "change filesystem root to `dir` before serving, requires root")
var setuid = flag.Int("setuid", -1, "change user id before serving, -1=keep")

func main() {
	os.Exit(run(os.Args[1:]))
}

// Runs the command line and returns the process exit code. Deferred cleanup such as
// stopping the CPU profile completes before main exits
func run(cmdLine []string) int {
	logWriter := cs.Log
	start := time.Now()
	flag.Usage = func() {
		fmt.Fprintf(logWriter, `Colorspaces Copyright (c) 2020 Markus L. Noga
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (convert|lerp|gradient|accent|random|stats|run|serve|legal|version) args...

Commands:
  convert  Show RGB, XYZ, LAB and LCH values of the given hex colors
  lerp     Interpolate between two colors, see -t and -space
  gradient Sample a gradient through the given colors, see -steps and -space
  accent   Derive lighter, darker, saturated, muted and complementary accents of a color
  random   Generate random colors in LCH, mapped into the sRGB gamut
  stats    Show statistics of the given palette files
  run      Execute the operator pipeline from the given JSON, TOML or YAML file
  serve    Serve the REST API, see -addr
  legal    Show license and attribution information
  version  Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	if err := flag.CommandLine.Parse(cmdLine); err != nil {
		return 2
	}
	defer cs.LogCloseFile()

	// Initialize logging to file in addition to stdout, if selected
	if *log == "%auto" {
		if *out != "" {
			*log = strings.TrimSuffix(*out, filepath.Ext(*out)) + ".log"
		} else {
			*log = ""
		}
	}
	if *log != "" {
		if err := cs.LogAlsoToFile(*log); err != nil {
			fmt.Fprintf(logWriter, "Unable to open logfile '%s': %s\n", *log, err.Error())
			return 1
		}
	}

	// Enable CPU profiling if flagged
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(logWriter, "Could not create CPU profile: ", err)
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(logWriter, "Could not start CPU profile: ", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		return 0
	}

	c := ops.NewContext(logWriter)
	c.Swatch.CellWidth, c.Swatch.CellHeight = *cell, *cell
	interpolation, err := colorspace.ParseSpace(*space)
	if err != nil {
		fmt.Fprintf(logWriter, "Error: %s\n", err.Error())
		return 1
	}

	// run actions
	switch args[0] {
	case "convert":
		err = cmdConvert(args[1:], logWriter)

	case "lerp":
		err = cmdLerp(args[1:], interpolation, logWriter)

	case "gradient":
		err = cmdGradient(args[1:], interpolation, c)

	case "accent":
		err = cmdAccent(args[1:], c)

	case "random":
		err = cmdRandom(c)

	case "stats":
		err = cmdStats(args[1:], c)

	case "run":
		err = cmdRun(args[1:], c)

	case "serve":
		if err = rest.MakeSandbox(logWriter, *chroot, *setuid); err == nil {
			fmt.Fprintf(logWriter, "Serving on %s\n", *addr)
			err = rest.Serve(*addr)
		}

	case "legal":
		fmt.Fprint(logWriter, legal)

	case "version":
		fmt.Fprintf(logWriter, "Version %s\n", version)
		fmt.Fprintf(logWriter, "Running on %s with %d logical cores, AVX2 %v, %d MiB memory, %d threads\n",
			cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.AVX2(), c.MemoryMB, c.MaxThreads)

	case "help", "?":
		flag.Usage()

	default:
		fmt.Fprintf(logWriter, "Unknown command '%s'\n\n", args[0])
		flag.Usage()
		return 1
	}

	if args[0] != "legal" && args[0] != "version" && args[0] != "help" && args[0] != "?" {
		fmt.Fprintf(logWriter, "\nDone after %v\n", time.Since(start))
	}

	// Store memory profile if flagged
	if *memprofile != "" {
		if perr := writeMemProfile(*memprofile); perr != nil {
			fmt.Fprintln(logWriter, "Could not write allocation profile: ", perr)
			if err == nil {
				return 1
			}
		}
	}

	if err != nil {
		fmt.Fprintf(logWriter, "Error: %s\n", err.Error())
		return 1
	}
	return 0
}

func writeMemProfile(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer f.Close()
	runtime.GC() // get up-to-date statistics
	return pprof.Lookup("allocs").WriteTo(f, 0)
}

func parseColors(args []string) ([]colorspace.RGB, error) {
	colors := make([]colorspace.RGB, len(args))
	for i, a := range args {
		c, err := colorspace.ParseHex(a)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

// Prints all representations of a color
func printColor(w io.Writer, label string, c colorspace.RGB) {
	xyz, lab, lch, ok := c.ToXYZ(), c.ToLAB(), c.ToLCH(), c.ToOkLCH()
	gamut := ""
	if !c.InGamut(colorspace.GamutTolerance) {
		gamut = " (out of gamut)"
	}
	fmt.Fprintf(w, "%s %s%s\n", label, c.Hex(), gamut)
	fmt.Fprintf(w, "  rgb   %10.6f %10.6f %10.6f  alpha %.4f\n", c.R, c.G, c.B, c.Alpha)
	fmt.Fprintf(w, "  xyz   %10.6f %10.6f %10.6f\n", xyz.X, xyz.Y, xyz.Z)
	fmt.Fprintf(w, "  lab   %10.4f %10.4f %10.4f\n", lab.L, lab.A, lab.B)
	fmt.Fprintf(w, "  lch   %10.4f %10.4f %10.4f\n", lch.L, lch.C, lch.H)
	fmt.Fprintf(w, "  oklch %10.6f %10.6f %10.4f\n", ok.L, ok.C, ok.H)
}

func cmdConvert(args []string, logWriter io.Writer) error {
	if len(args) == 0 {
		return errors.New("convert needs at least one color")
	}
	colors, err := parseColors(args)
	if err != nil {
		return err
	}
	for i, c := range colors {
		printColor(logWriter, fmt.Sprintf("%d:", i), c)
		terminal.Print(c)
	}
	return nil
}

func cmdLerp(args []string, s colorspace.Space, logWriter io.Writer) error {
	if len(args) != 2 {
		return errors.New(fmt.Sprintf("lerp needs exactly two colors, got %d", len(args)))
	}
	colors, err := parseColors(args)
	if err != nil {
		return err
	}
	res := s.Lerp(colors[0], colors[1], *t)
	printColor(logWriter, fmt.Sprintf("%s t=%g:", s, *t), res)
	terminal.Print(colors[0], res, colors[1])
	return nil
}

func cmdGradient(args []string, s colorspace.Space, c *ops.Context) error {
	stops, err := parseColors(args)
	if err != nil {
		return err
	}
	colors, err := palette.Gradient(stops, palette.SamplesForSteps(len(stops), *steps), s)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Log, "Gradient in %s through %d stops:\n", s, len(stops))
	return outputPalette(palette.NewPalette(0, "gradient", colors...), c)
}

func cmdAccent(args []string, c *ops.Context) error {
	if len(args) != 1 {
		return errors.New(fmt.Sprintf("accent needs exactly one color, got %d", len(args)))
	}
	base, err := colorspace.ParseHex(args[0])
	if err != nil {
		return err
	}
	return outputPalette(palette.Accents(0, base, *amount), c)
}

func cmdRandom(c *ops.Context) error {
	if *n < 1 {
		return errors.New(fmt.Sprintf("invalid number of colors %d", *n))
	}
	rng := fastrand.RNG{}
	return outputPalette(palette.Random(0, *n, &rng, *minL, *maxL, *maxC), c)
}

// Prints the palette, and writes it to the output file if one is given
func outputPalette(p *palette.Palette, c *ops.Context) error {
	if err := p.WriteText(c.Log); err != nil {
		return err
	}
	terminal.Print(p.Colors()...)
	if *out == "" {
		return nil
	}
	return ops.WritePaletteFile(p, *out, c)
}

func cmdStats(args []string, c *ops.Context) error {
	var promises []ops.Promise
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return err
		}
		for _, match := range matches {
			id, fileName := len(promises), match
			promises = append(promises, func() (*palette.Palette, error) {
				p, err := palette.NewPaletteFromFile(fileName, id, c.Log)
				if err != nil {
					return nil, err
				}
				s, err := p.Stats()
				if err != nil {
					return nil, errors.New(fmt.Sprintf("%d: %s: %s", id, fileName, err.Error()))
				}
				fmt.Fprintf(c.Log, "%d: %s '%s' %v\n", id, fileName, p.Name, s)
				return p, nil
			})
		}
	}
	if len(promises) == 0 {
		return errors.New(fmt.Sprintf("no palette files match %v", args))
	}
	_, err := ops.MaterializeAll(promises, c.MaxThreads, true)
	return err
}

func cmdRun(args []string, c *ops.Context) error {
	if len(args) != 1 {
		return errors.New(fmt.Sprintf("run needs exactly one pipeline file, got %d", len(args)))
	}
	op, err := ops.ReadOperatorFile(args[0])
	if err != nil {
		return err
	}
	if bs, err := json.MarshalIndent(op, "", "  "); err == nil {
		fmt.Fprintf(c.Log, "Pipeline:\n%s\n", string(bs))
	}
	promises, err := op.MakePromises(nil, c)
	if err != nil {
		return err
	}
	_, err = ops.MaterializeAll(promises, c.MaxThreads, true)
	return err
}
