// Package dataset loads location candidate records from flat files for the
// rank CLI and for embedding applications that keep candidates on disk.
package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/openplaces/placerank/internal/location"
)

// Dataset decoding errors.
var (
	ErrEmptyData         = errors.New("empty dataset data")
	ErrInvalidJSON       = errors.New("invalid JSON dataset")
	ErrInvalidCBOR       = errors.New("invalid CBOR dataset")
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// Load reads a location dataset from a file, choosing the decoder by file
// extension: .json for JSON, .cbor for CBOR.
//
// The file must contain an array of location records. An empty array is a
// valid dataset; an empty file is not.
func Load(path string) ([]location.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(data)
	case ".cbor":
		return DecodeCBOR(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DecodeJSON decodes a JSON-encoded array of location records.
func DecodeJSON(data []byte) ([]location.Location, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var locations []location.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return locations, nil
}

// DecodeCBOR decodes a CBOR-encoded array of location records.
func DecodeCBOR(data []byte) ([]location.Location, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var locations []location.Location
	dec := cbor.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&locations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCBOR, err)
	}

	return locations, nil
}
