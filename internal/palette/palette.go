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

// Package palette holds named color lists and the bulk operations on them:
// accent derivation, gradients, statistics and file formats.
package palette

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
)

// A named color
type Entry struct {
	Name  string
	Color colorspace.RGB
}

type entryJSON struct {
	Name  string   `json:"name,omitempty"`
	Hex   string   `json:"hex"`
	R     *float64 `json:"r,omitempty"`
	G     *float64 `json:"g,omitempty"`
	B     *float64 `json:"b,omitempty"`
	Alpha *float64 `json:"alpha,omitempty"`
}

// Marshals hex notation for readability, plus the exact channels
func (e Entry) MarshalJSON() ([]byte, error) {
	c := e.Color
	return json.Marshal(entryJSON{e.Name, c.Hex(), &c.R, &c.G, &c.B, &c.Alpha})
}

// Unmarshals from exact channels if present, from hex notation otherwise
func (e *Entry) UnmarshalJSON(data []byte) error {
	var ej entryJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	e.Name = ej.Name
	if ej.R != nil && ej.G != nil && ej.B != nil {
		e.Color = colorspace.RGB{R: *ej.R, G: *ej.G, B: *ej.B, Alpha: 1}
		if ej.Alpha != nil {
			e.Color.Alpha = *ej.Alpha
		}
		return nil
	}
	c, err := colorspace.ParseHex(ej.Hex)
	if err != nil {
		return err
	}
	e.Color = c
	return nil
}

// An ordered list of named colors
type Palette struct {
	ID       int     `json:"-"`
	Name     string  `json:"name,omitempty"`
	FileName string  `json:"-"`
	Entries  []Entry `json:"colors"`
}

// Creates a palette from unnamed colors
func NewPalette(id int, name string, colors ...colorspace.RGB) *Palette {
	p := &Palette{ID: id, Name: name, Entries: make([]Entry, len(colors))}
	for i, c := range colors {
		p.Entries[i] = Entry{Color: c}
	}
	return p
}

// Returns the colors without names
func (p *Palette) Colors() []colorspace.RGB {
	cs := make([]colorspace.RGB, len(p.Entries))
	for i, e := range p.Entries {
		cs[i] = e.Color
	}
	return cs
}

// Returns a deep copy with the same ID
func (p *Palette) Clone() *Palette {
	c := *p
	c.Entries = append([]Entry(nil), p.Entries...)
	return &c
}

func (p *Palette) String() string {
	return fmt.Sprintf("%d colors", len(p.Entries))
}

// Reads a palette from the given file. Files ending in .json are read as JSON,
// everything else as text with one color per line
func NewPaletteFromFile(fileName string, id int, logWriter io.Writer) (*Palette, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p *Palette
	if strings.HasSuffix(strings.ToLower(fileName), ".json") {
		p, err = ReadJSON(f)
	} else {
		p, err = ReadText(f)
	}
	if err != nil {
		return nil, errors.New(fmt.Sprintf("%d: error reading %s: %s", id, fileName, err.Error()))
	}
	p.ID, p.FileName = id, fileName
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	}
	return p, nil
}

// Reads a palette in JSON notation
func ReadJSON(r io.Reader) (*Palette, error) {
	p := &Palette{}
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Reads a palette with one color per line, as an optional name followed by a
// hex color. Blank lines and lines starting with // are skipped, except that
// the first comment names the palette
func ReadText(r io.Reader) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			if p.Name == "" && len(p.Entries) == 0 {
				p.Name = strings.TrimSpace(strings.TrimPrefix(line, "//"))
			}
			continue
		}
		fields := strings.Fields(line)
		hex := fields[len(fields)-1]
		c, err := colorspace.ParseHex(hex)
		if err != nil {
			return nil, errors.New(fmt.Sprintf("line %d: %s", lineNo, err.Error()))
		}
		p.Entries = append(p.Entries, Entry{Name: strings.Join(fields[:len(fields)-1], " "), Color: c})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// Writes the palette in JSON notation
func (p *Palette) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// Writes the palette with one color per line, as understood by ReadText
func (p *Palette) WriteText(w io.Writer) error {
	if p.Name != "" {
		if _, err := fmt.Fprintf(w, "// %s\n", p.Name); err != nil {
			return err
		}
	}
	for _, e := range p.Entries {
		var err error
		if e.Name != "" {
			_, err = fmt.Fprintf(w, "%s %s\n", e.Name, e.Color.Hex())
		} else {
			_, err = fmt.Fprintf(w, "%s\n", e.Color.Hex())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Writes the palette to a file, as JSON if the name ends in .json and as text otherwise
func (p *Palette) WriteFile(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	writer := bufio.NewWriter(f)
	if strings.HasSuffix(strings.ToLower(fileName), ".json") {
		err = p.WriteJSON(writer)
	} else {
		err = p.WriteText(writer)
	}
	if err != nil {
		f.Close()
		return err
	}
	if err = writer.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
