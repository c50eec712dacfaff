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

package ops

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/swatch"
)

// Changes into a fresh temporary directory for the duration of the test,
// as operators only accept relative paths
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func writeTestPalette(t *testing.T, fileName string, hexes ...string) {
	t.Helper()
	p := &palette.Palette{}
	for _, h := range hexes {
		c, err := colorspace.ParseHex(h)
		if err != nil {
			t.Fatal(err)
		}
		p.Entries = append(p.Entries, palette.Entry{Color: c})
	}
	if err := p.WriteFile(fileName); err != nil {
		t.Fatal(err)
	}
}

func testContext(log io.Writer) *Context {
	c := NewContext(log)
	c.Swatch.CellWidth, c.Swatch.CellHeight = 4, 4
	return c
}

type isPathAllowedTestCase struct {
	Path string
	Want bool
}

func TestIsPathAllowed(t *testing.T) {
	tcs := []isPathAllowedTestCase{
		{"palette.txt", true},
		{"sub/dir/palette.json", true},
		{"", false},
		{"/etc/passwd", false},
		{"../secret.txt", false},
		{"sub/../../x.txt", false},
	}
	for _, tc := range tcs {
		if got := isPathAllowed(tc.Path); got != tc.Want {
			t.Errorf("isPathAllowed(%q)=%v; want %v", tc.Path, got, tc.Want)
		}
	}
}

func TestNewContext(t *testing.T) {
	c := NewContext(io.Discard)
	if c.MemoryMB <= 0 || c.MaxThreads < 1 || c.Swatch == nil || c.JPGQuality != 95 {
		t.Errorf("got %+v", c)
	}
}

func TestSwatchMemoryLimit(t *testing.T) {
	chdirTemp(t)
	c := NewContext(io.Discard)
	c.MemoryMB = 1
	c.Swatch = &swatch.Layout{CellWidth: 512, CellHeight: 512}
	p := palette.NewPalette(1, "big", colorspace.RGB{R: 1, Alpha: 1})
	if err := WritePaletteFile(p, "big.tif", c); err == nil {
		t.Errorf("expected memory limit error")
	}
	if _, err := os.Stat("big.tif"); err == nil {
		t.Errorf("file written despite memory limit")
	}
	if err := WritePaletteFile(p, "big.json", c); err != nil {
		t.Errorf("text output must not be limited, got %v", err)
	}
}

func TestRemoveNils(t *testing.T) {
	a, b := palette.NewPalette(1, "a"), palette.NewPalette(2, "b")
	got := RemoveNils([]*palette.Palette{nil, a, nil, nil, b})
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("got %v", got)
	}
}

func TestMaterializeAll(t *testing.T) {
	ins := make([]Promise, 10)
	for i := range ins {
		id := i
		ins[i] = func() (*palette.Palette, error) {
			if id%4 == 3 {
				return nil, errors.New("broken")
			}
			return palette.NewPalette(id, ""), nil
		}
	}
	outs, err := MaterializeAll(ins, 3, false)
	if err == nil || strings.Count(err.Error(), "broken") != 2 {
		t.Errorf("got error %v; want two joined errors", err)
	}
	if len(outs) != 8 {
		t.Fatalf("got %d outputs; want 8", len(outs))
	}
	for i := 1; i < len(outs); i++ {
		if outs[i].ID <= outs[i-1].ID {
			t.Errorf("outputs out of order: %d after %d", outs[i].ID, outs[i-1].ID)
		}
	}

	outs, err = MaterializeAll(ins[:3], 0, true)
	if err != nil || outs != nil {
		t.Errorf("forget got %v, %v", outs, err)
	}
	if outs, err = MaterializeAll(nil, 2, false); outs != nil || err != nil {
		t.Errorf("empty got %v, %v", outs, err)
	}
}

func TestLoadAndSave(t *testing.T) {
	chdirTemp(t)
	writeTestPalette(t, "brand.txt", "#ff0000", "#00ff00", "#0000ff")

	var log bytes.Buffer
	c := testContext(&log)
	promises, err := NewOpLoad(5, "brand.txt").MakePromises(nil, c)
	if err != nil {
		t.Fatal(err)
	}
	for _, pattern := range []string{"out%d.json", "out%d.hex", "out.jpg", "out.tiff"} {
		promises, err = NewOpSave(pattern).MakePromises(promises, c)
		if err != nil {
			t.Fatal(err)
		}
	}
	outs, err := MaterializeAll(promises, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 1 || outs[0].ID != 5 || len(outs[0].Entries) != 3 {
		t.Fatalf("got %v", outs)
	}
	for _, fileName := range []string{"out5.json", "out5.hex", "out.jpg", "out.tiff"} {
		if st, err := os.Stat(fileName); err != nil || st.Size() == 0 {
			t.Errorf("%s not written: %v", fileName, err)
		}
	}
	if !strings.Contains(log.String(), "5: Loaded palette 'brand'") {
		t.Errorf("log lacks load message: %s", log.String())
	}

	p, err := palette.NewPaletteFromFile("out5.json", 0, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if p.Entries[1].Color.Hex() != "#00ff00" {
		t.Errorf("saved color got %s", p.Entries[1].Color.Hex())
	}
}

func TestLoadAndSaveErrors(t *testing.T) {
	chdirTemp(t)
	c := testContext(io.Discard)
	if _, err := NewOpLoad(0, "/tmp/x.txt").MakePromises(nil, c); err == nil {
		t.Errorf("expected error for absolute path")
	}
	if _, err := NewOpLoad(0, "x.txt").MakePromises([]Promise{nil}, c); err == nil {
		t.Errorf("expected error for load with inputs")
	}
	promises, err := NewOpLoad(0, "missing.txt").MakePromises(nil, c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := MaterializeAll(promises, 1, false); err == nil {
		t.Errorf("expected error for missing file")
	}

	writeTestPalette(t, "a.txt", "#123456")
	for _, pattern := range []string{"out.fits", "../out.json"} {
		promises, _ = NewOpLoad(0, "a.txt").MakePromises(nil, c)
		promises, _ = NewOpSave(pattern).MakePromises(promises, c)
		if _, err := MaterializeAll(promises, 1, false); err == nil {
			t.Errorf("expected error saving to %s", pattern)
		}
	}
	if _, err := NewOpSave("x.json").MakePromises(nil, c); err == nil {
		t.Errorf("expected error for unary operator without inputs")
	}
}

func TestLoadMany(t *testing.T) {
	chdirTemp(t)
	writeTestPalette(t, "a.txt", "#111111")
	writeTestPalette(t, "b.txt", "#222222", "#333333")

	c := testContext(io.Discard)
	promises, err := NewOpLoadMany([]string{"*.txt"}).MakePromises(nil, c)
	if err != nil {
		t.Fatal(err)
	}
	outs, err := MaterializeAll(promises, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 2 || outs[0].ID != 0 || outs[0].Name != "a" || outs[1].ID != 1 || len(outs[1].Entries) != 2 {
		t.Errorf("got %v", outs)
	}

	if _, err := NewOpLoadMany([]string{"*.json"}).MakePromises(nil, c); err == nil {
		t.Errorf("expected error for no matches")
	}
}

func TestSequenceJSON(t *testing.T) {
	chdirTemp(t)
	writeTestPalette(t, "a.txt", "#111111")
	writeTestPalette(t, "b.txt", "#222222")

	js := `{"type":"seq","steps":[
		{"type":"loadMany","filePatterns":["*.txt"]},
		{"type":"forEach","operation":{"type":"save","filePattern":"out%d.json"}}
	]}`
	seq := &OpSequence{}
	if err := json.Unmarshal([]byte(js), seq); err != nil {
		t.Fatal(err)
	}
	if !seq.Active || len(seq.Steps) != 2 || seq.Steps[0].GetType() != "loadMany" || seq.Steps[1].GetType() != "forEach" {
		t.Fatalf("got %+v", seq)
	}
	save := seq.Steps[1].(*OpForEach).Operation.(*OpSave)
	if !save.Active || save.FilePattern != "out%d.json" || save.OpUnaryBase.Apply == nil {
		t.Errorf("embedded save got %+v", save)
	}

	c := testContext(io.Discard)
	promises, err := seq.MakePromises(nil, c)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := MaterializeAll(promises, c.MaxThreads, true); err != nil {
		t.Fatal(err)
	}
	for _, fileName := range []string{"out0.json", "out1.json"} {
		if _, err := os.Stat(fileName); err != nil {
			t.Errorf("%s not written: %s", fileName, err)
		}
	}

	bs, err := json.Marshal(seq)
	if err != nil {
		t.Fatal(err)
	}
	seq2 := &OpSequence{}
	if err := json.Unmarshal(bs, seq2); err != nil {
		t.Fatalf("%s: %s", err, string(bs))
	}
	if len(seq2.Steps) != 2 || seq2.Steps[1].(*OpForEach).Operation.(*OpSave).FilePattern != "out%d.json" {
		t.Errorf("re-decoded got %s", string(bs))
	}

	if err := json.Unmarshal([]byte(`{"type":"seq","steps":[{"type":"stack"}]}`), &OpSequence{}); err == nil {
		t.Errorf("expected error for unknown operator type")
	}
}

func TestForEachWithoutOperation(t *testing.T) {
	c := testContext(io.Discard)
	in := func() (*palette.Palette, error) { return palette.NewPalette(0, ""), nil }
	if _, err := NewOpForEach(nil).MakePromises([]Promise{in}, c); err == nil {
		t.Errorf("expected error for missing operation")
	}
	if outs, err := NewOpForEach(nil).MakePromises(nil, c); outs != nil || err != nil {
		t.Errorf("empty input got %v, %v", outs, err)
	}
}
