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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Reads an operator pipeline from file. Files ending in .toml are read as TOML,
// .yaml and .yml as YAML, everything else as JSON. All formats share the JSON
// field names, e.g. "type", "steps" and "filePattern"
func ReadOperatorFile(fileName string) (Operator, error) {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		var tree map[string]interface{}
		if err := toml.Unmarshal(raw, &tree); err != nil {
			return nil, errors.New(fmt.Sprintf("error parsing TOML pipeline %s: %s", fileName, err.Error()))
		}
		raw, err = json.Marshal(tree)
	case ".yaml", ".yml":
		var tree map[string]interface{}
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return nil, errors.New(fmt.Sprintf("error parsing YAML pipeline %s: %s", fileName, err.Error()))
		}
		raw, err = json.Marshal(tree)
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalOperator(raw)
}
