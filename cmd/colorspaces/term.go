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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Prints rows of colored blocks. Writes to stdout only, never to the log file,
// and only when stdout is a terminal
type swatchPrinter struct {
	w       io.Writer
	out     *termenv.Output
	enabled bool
}

func newSwatchPrinter() *swatchPrinter {
	fd := os.Stdout.Fd()
	return &swatchPrinter{
		w:       os.Stdout,
		out:     termenv.NewOutput(os.Stdout),
		enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (sp *swatchPrinter) Print(colors ...colorspace.RGB) {
	if !sp.enabled || len(colors) == 0 {
		return
	}
	var b strings.Builder
	for _, c := range colors {
		hex := c.Hex()[:7] // alpha is not shown
		b.WriteString(sp.out.String("    ").Background(sp.out.Color(hex)).String())
	}
	fmt.Fprintln(sp.w, b.String())
}
