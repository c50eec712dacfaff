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

package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/FlineDev/HandySwiftUI-sub000/internal/palette"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	w := httptest.NewRecorder()
	NewRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestConvert(t *testing.T) {
	w := post(t, "/api/v1/convert", `{"colors":["#ff0000","#808080"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Colors []conversion `json:"colors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Colors, 2)
	red := res.Colors[0]
	assert.Equal(t, "#ff0000", red.Hex)
	assert.InDelta(t, 53.24079, red.LAB.L, 1e-4)
	assert.InDelta(t, 80.09246, red.LAB.A, 1e-4)
	assert.InDelta(t, 39.99901, red.LCH.H, 1e-4)
	assert.InDelta(t, 0.2126729, red.XYZ.Y, 1e-7)
	assert.Equal(t, 1.0, red.RGB.Alpha)
	assert.InDelta(t, 0, res.Colors[1].LCH.C, 1e-3)
}

func TestConvertBadRequests(t *testing.T) {
	for _, body := range []string{`{"colors":[]}`, `{}`, `{"colors":["#12"]}`, `not json`} {
		w := post(t, "/api/v1/convert", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), `"error"`, body)
	}
}

func TestLerp(t *testing.T) {
	w := post(t, "/api/v1/lerp", `{"from":"#ff0000","to":"#0000ff","t":0.5,"space":"rgb"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res conversion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.InDelta(t, 0.5, res.RGB.R, 1e-12)
	assert.InDelta(t, 0.5, res.RGB.B, 1e-12)

	// default space is LCH, which keeps the midpoint saturated
	w = post(t, "/api/v1/lerp", `{"from":"#ff0000","to":"#0000ff","t":0.5}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Greater(t, res.LCH.C, 100.0)

	w = post(t, "/api/v1/lerp", `{"from":"#ff0000","to":"#0000ff","space":"cmyk"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = post(t, "/api/v1/lerp", `{"from":"#ff0000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGradient(t *testing.T) {
	w := post(t, "/api/v1/gradient", `{"stops":["#000000","#ffffff"],"steps":4,"space":"lab"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p, err := palette.ReadJSON(w.Body)
	require.NoError(t, err)
	require.Len(t, p.Entries, 5)
	assert.Equal(t, "#000000", p.Entries[0].Color.Hex())
	assert.Equal(t, "#ffffff", p.Entries[4].Color.Hex())
	assert.InDelta(t, 50, p.Entries[2].Color.ToLAB().L, 1e-3)

	// steps count per pair of stops, as in the gradient operator
	w = post(t, "/api/v1/gradient", `{"stops":["#000000","#808080","#ffffff"],"steps":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p, err = palette.ReadJSON(w.Body)
	require.NoError(t, err)
	require.Len(t, p.Entries, 7)
	assert.Equal(t, "#808080", p.Entries[3].Color.Hex())

	w = post(t, "/api/v1/gradient", `{"stops":["#000000"],"steps":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, "/api/v1/gradient", `{"stops":["#000000","#111111","#222222","#333333","#444444","#555555"],"steps":1000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccents(t *testing.T) {
	w := post(t, "/api/v1/accents", `{"color":"#0a84ff"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p, err := palette.ReadJSON(w.Body)
	require.NoError(t, err)
	require.Len(t, p.Entries, 7)
	assert.Equal(t, "base", p.Entries[0].Name)
	assert.Equal(t, "#0a84ff", p.Entries[0].Color.Hex())
	assert.InDelta(t, p.Entries[0].Color.ToLAB().L+15, p.Entries[1].Color.ToLAB().L, 0.01)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(old)

	require.NoError(t, os.WriteFile("in.txt", []byte("// base\n#ff0000\n#0000ff\n"), 0644))
	body := `{"pipeline":{"type":"seq","steps":[
		{"type":"load","fileName":"in.txt"},
		{"type":"gradient","steps":2},
		{"type":"save","filePattern":"out.json"}
	]}}`
	w := post(t, "/api/v1/run", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Loaded palette 'base'")
	assert.Contains(t, w.Body.String(), "Done.")

	p, err := palette.NewPaletteFromFile(filepath.Join(dir, "out.json"), 0, os.Stdout)
	require.NoError(t, err)
	assert.Len(t, p.Entries, 3)

	w = post(t, "/api/v1/run", `{"pipeline":{"type":"load","fileName":"/etc/passwd"}}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "error: Filename outside current directory tree")

	w = post(t, "/api/v1/run", `{"pipeline":{"type":"fly"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
