// File: data.go
// Title: Data Model Loading
// Description: Reads the attributes of a run from a YAML, TOML or JSON file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package render

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
)

// LoadData reads the attribute map from path. The format follows the file
// extension: .yaml/.yml, .toml or .json.
func LoadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIO
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read data file").
			WithCode(code).
			WithOperation("render.LoadData").
			WithDetail("path", path)
	}

	data, err := DecodeData(raw, filepath.Ext(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to decode data file").
			WithOperation("render.LoadData").
			WithDetail("path", path)
	}
	return data, nil
}

// DecodeData decodes raw in the format named by the extension ext
func DecodeData(raw []byte, ext string) (map[string]any, error) {
	data := make(map[string]any)

	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &data)
	case ".toml":
		_, err = toml.Decode(string(raw), &data)
	case ".json":
		err = json.Unmarshal(raw, &data)
	default:
		return nil, mdwerror.Newf("unsupported data format %q", ext).
			WithCode(mdwerror.CodeInvalidInput)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid data").WithCode(mdwerror.CodeInvalidInput)
	}
	return data, nil
}
