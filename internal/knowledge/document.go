package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Document is a knowledge file: a move tree plus version/timestamp
// metadata. Version and Timestamp are passed through untouched so the
// split outputs echo whatever the producer wrote.
type Document struct {
	Version   json.RawMessage `json:"version,omitempty"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
	MoveTree  MoveTree        `json:"moveTree"`
}

// MoveTree wraps the root node.
type MoveTree struct {
	Root *Node `json:"root"`
}

// Load reads a knowledge document from path. Files ending in .zst are
// decompressed transparently.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".zst") {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.MoveTree.Root == nil {
		return nil, fmt.Errorf("%s: missing moveTree.root", path)
	}
	if len(doc.Version) == 0 {
		doc.Version = json.RawMessage(`"2.0"`)
	}
	if len(doc.Timestamp) == 0 {
		doc.Timestamp = json.RawMessage(`0`)
	}
	return &doc, nil
}

// WriteJSON marshals v with indentation and writes it atomically (temp
// file then rename). When compress is true the payload is zstd-framed
// and ".zst" is appended to the path. Returns the path actually written.
func WriteJSON(path string, v any, compress bool) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return "", err
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
		path += ".zst"
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tempPath, path); err != nil {
		return "", err
	}
	return path, nil
}
