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
	"image/jpeg"
	"io"
	"os"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
)

// Write a palette swatch to JPG with the given quality.
func WriteJPGToFile(p *palette.Palette, l *Layout, fileName string, quality int) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	return WriteJPG(writer, p, l, quality)
}

// Write a palette swatch to JPG with the given quality.
func WriteJPG(writer io.Writer, p *palette.Palette, l *Layout, quality int) error {
	img, err := Render8(p, l)
	if err != nil {
		return err
	}
	return jpeg.Encode(writer, img, &jpeg.Options{Quality: quality})
}
