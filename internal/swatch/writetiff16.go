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

package swatch

import (
	"bufio"
	"io"
	"os"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
	"golang.org/x/image/tiff"
)

// Write a palette swatch to 16-bit TIFF.
func WriteTIFF16ToFile(p *palette.Palette, l *Layout, fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteTIFF16(writer, p, l)
}

// Write a palette swatch to 16-bit TIFF.
func WriteTIFF16(writer io.Writer, p *palette.Palette, l *Layout) error {
	img, err := Render(p, l)
	if err != nil {
		return err
	}
	return tiff.Encode(writer, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
