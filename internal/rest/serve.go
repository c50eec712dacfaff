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

// Package rest exposes color conversions and palette pipelines over HTTP.
package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/colorspace"
	"github.com/FlineDev/HandySwiftUI-sub000/internal/ops"
	_ "github.com/FlineDev/HandySwiftUI-sub000/internal/ops/adjust" // register operators for JSON decoding
	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
	"github.com/gin-gonic/gin"
)

// Sets up the API routes
func NewRouter() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/convert", postConvert)
			v1.POST("/lerp", postLerp)
			v1.POST("/gradient", postGradient)
			v1.POST("/accents", postAccents)
			v1.POST("/run", postRun)
		}
	}
	return r
}

// Listens and serves on the given address, e.g. ":8080"
func Serve(addr string) error {
	return NewRouter().Run(addr)
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// All representations of a single color
type conversion struct {
	Hex string           `json:"hex"`
	RGB colorspace.RGB   `json:"rgb"`
	XYZ colorspace.XYZ   `json:"xyz"`
	LAB colorspace.LAB   `json:"lab"`
	LCH colorspace.LCH   `json:"lch"`
	Ok  colorspace.OkLCH `json:"oklch"`
}

func newConversion(rgb colorspace.RGB) conversion {
	return conversion{rgb.Hex(), rgb, rgb.ToXYZ(), rgb.ToLAB(), rgb.ToLCH(), rgb.ToOkLCH()}
}

type postConvertArgs struct {
	Colors []string `json:"colors" binding:"required,min=1"`
}

func postConvert(c *gin.Context) {
	var args postConvertArgs
	if err := c.ShouldBind(&args); err != nil {
		badRequest(c, err)
		return
	}
	res := make([]conversion, len(args.Colors))
	for i, h := range args.Colors {
		rgb, err := colorspace.ParseHex(h)
		if err != nil {
			badRequest(c, err)
			return
		}
		res[i] = newConversion(rgb)
	}
	c.JSON(http.StatusOK, gin.H{"colors": res})
}

type postLerpArgs struct {
	From  string           `json:"from" binding:"required"`
	To    string           `json:"to" binding:"required"`
	T     float64          `json:"t"`
	Space colorspace.Space `json:"space"`
}

func postLerp(c *gin.Context) {
	args := postLerpArgs{Space: colorspace.SpaceLCH}
	if err := c.ShouldBind(&args); err != nil {
		badRequest(c, err)
		return
	}
	from, err := colorspace.ParseHex(args.From)
	if err != nil {
		badRequest(c, err)
		return
	}
	to, err := colorspace.ParseHex(args.To)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, newConversion(args.Space.Lerp(from, to, args.T)))
}

type postGradientArgs struct {
	Stops []string         `json:"stops" binding:"required,min=1"`
	Steps int              `json:"steps" binding:"required,min=1,max=1024"` // per pair of consecutive stops
	Space colorspace.Space `json:"space"`
}

func postGradient(c *gin.Context) {
	args := postGradientArgs{Space: colorspace.SpaceLCH}
	if err := c.ShouldBind(&args); err != nil {
		badRequest(c, err)
		return
	}
	stops := make([]colorspace.RGB, len(args.Stops))
	for i, h := range args.Stops {
		rgb, err := colorspace.ParseHex(h)
		if err != nil {
			badRequest(c, err)
			return
		}
		stops[i] = rgb
	}
	n := palette.SamplesForSteps(len(stops), args.Steps)
	if n > 4096 {
		badRequest(c, fmt.Errorf("gradient of %d colors exceeds the limit of 4096", n))
		return
	}
	cs, err := palette.Gradient(stops, n, args.Space)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, palette.NewPalette(0, "gradient", cs...))
}

type postAccentsArgs struct {
	Color  string  `json:"color" binding:"required"`
	Amount float64 `json:"amount"`
}

func postAccents(c *gin.Context) {
	args := postAccentsArgs{Amount: 15}
	if err := c.ShouldBind(&args); err != nil {
		badRequest(c, err)
		return
	}
	base, err := colorspace.ParseHex(args.Color)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, palette.Accents(0, base, args.Amount))
}

func printArgs(logWriter io.Writer, prefix, suffix string, args interface{}) error {
	m, err := json.MarshalIndent(args, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(logWriter, "%s%s%s", prefix, string(m), suffix)
	return nil
}

type postRunArgs struct {
	Pipeline json.RawMessage `json:"pipeline" binding:"required"`
}

// Runs an operator pipeline, streaming its log as plain text
func postRun(c *gin.Context) {
	logWriter := c.Writer
	var args postRunArgs
	if err := c.ShouldBind(&args); err != nil {
		badRequest(c, err)
		return
	}
	op, err := ops.UnmarshalOperator(args.Pipeline)
	if err != nil {
		badRequest(c, err)
		return
	}

	header := logWriter.Header()
	header.Set("Content-Type", "text/plain")
	logWriter.WriteHeader(http.StatusOK)

	if err := printArgs(logWriter, "Pipeline:\n", "\n", op); err != nil {
		fmt.Fprintf(logWriter, "Error printing arguments: %s\n", err.Error())
		return
	}

	ctx := ops.NewContext(logWriter)
	promises, err := op.MakePromises(nil, ctx)
	if err == nil {
		// the response writer is not safe for concurrent use
		_, err = ops.MaterializeAll(promises, 1, true)
	}
	if err != nil {
		fmt.Fprintf(logWriter, "error: %s\n", err.Error())
	} else {
		fmt.Fprintf(logWriter, "Done.\n")
	}
	logWriter.Flush()
}
