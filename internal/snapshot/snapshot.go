// Package snapshot encodes and decodes cube states for files and storage.
//
// States are JSON documents checked against an embedded JSON schema before
// they are decoded. Compressed snapshots are the same JSON wrapped in zstd.
package snapshot

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/SeamusWaldron/stickercube"
)

// CompressedExt is the file extension that selects zstd compression.
const CompressedExt = ".zst"

//go:embed schema/state.schema.json
var stateSchema string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("state.schema.json", stateSchema)
	})
	return schema, schemaErr
}

// Validate checks raw JSON against the state schema.
func Validate(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("failed to compile state schema: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %w", stickercube.ErrInvalidState, err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", stickercube.ErrInvalidState, err)
	}
	return nil
}

// Marshal encodes a state as indented JSON.
func Marshal(s stickercube.State) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Unmarshal validates and decodes a JSON state. The returned state always
// rebuilds to a valid cube.
func Unmarshal(data []byte) (stickercube.State, error) {
	var s stickercube.State
	if err := Validate(data); err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%w: %w", stickercube.ErrInvalidState, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

var (
	encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	decoder, _ = zstd.NewReader(nil)
)

// MarshalCompressed encodes a state as zstd-compressed JSON.
func MarshalCompressed(s stickercube.State) ([]byte, error) {
	data, err := Marshal(s)
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, make([]byte, 0, len(data)/4)), nil
}

// UnmarshalCompressed decodes data produced by MarshalCompressed.
func UnmarshalCompressed(data []byte) (stickercube.State, error) {
	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return stickercube.State{}, fmt.Errorf("failed to decompress state: %w", err)
	}
	return Unmarshal(raw)
}

// IsCompressed reports whether path names a compressed snapshot file.
func IsCompressed(path string) bool {
	return strings.EqualFold(filepath.Ext(path), CompressedExt)
}

// Write saves a state to path, compressing it when the path ends in .zst.
func Write(path string, s stickercube.State) error {
	var (
		data []byte
		err  error
	)
	if IsCompressed(path) {
		data, err = MarshalCompressed(s)
	} else {
		data, err = Marshal(s)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Read loads a state written by Write.
func Read(path string) (stickercube.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return stickercube.State{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if IsCompressed(path) {
		return UnmarshalCompressed(data)
	}
	return Unmarshal(data)
}
