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
	"os"
	"path/filepath"
	"testing"
)

func TestRunWritesCPUProfileOnError(t *testing.T) {
	prof := filepath.Join(t.TempDir(), "cpu.prof")
	if code := run([]string{"-log", "", "-cpuprofile", prof, "convert", "#zz0000"}); code == 0 {
		t.Errorf("invalid color got exit code 0")
	}
	fi, err := os.Stat(prof)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Errorf("CPU profile is empty after failed command")
	}
}

func TestRunExitCodes(t *testing.T) {
	for _, tc := range []struct {
		Args []string
		Want int
	}{
		{[]string{"-log", "", "-cpuprofile", "", "convert", "#ff0000"}, 0},
		{[]string{"-log", "", "-cpuprofile", "", "version"}, 0},
		{[]string{"-log", "", "-cpuprofile", "", "frobnicate"}, 1},
		{[]string{"-log", "", "-cpuprofile", "", "-space", "hsv", "convert", "#ff0000"}, 1},
	} {
		if got := run(tc.Args); got != tc.Want {
			t.Errorf("run(%v) got %d; want %d", tc.Args, got, tc.Want)
		}
		*space = "lch"
	}
}
