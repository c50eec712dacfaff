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

package internal

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLogAlsoToFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "run.log")
	if err := LogAlsoToFile(fileName); err != nil {
		t.Fatal(err)
	}
	defer LogCloseFile()

	LogPrintf("%d: converted %s\n", 1, "#ff0000")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			LogPrintln("worker line")
		}()
	}
	wg.Wait()
	LogSync()

	bs, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	got := string(bs)
	if !strings.HasPrefix(got, "1: converted #ff0000\n") {
		t.Errorf("log file starts with %q", got)
	}
	if n := strings.Count(got, "worker line\n"); n != 8 {
		t.Errorf("got %d worker lines; want 8", n)
	}

	if err := LogCloseFile(); err != nil {
		t.Fatal(err)
	}
	LogPrint("after close\n")
	bs, _ = os.ReadFile(fileName)
	if strings.Contains(string(bs), "after close") {
		t.Errorf("wrote to closed log file")
	}
}

func TestLogAlsoToFileError(t *testing.T) {
	if err := LogAlsoToFile(filepath.Join(t.TempDir(), "missing", "run.log")); err == nil {
		t.Errorf("expected error for missing directory")
	}
	LogSync() // no file, must not panic
}
