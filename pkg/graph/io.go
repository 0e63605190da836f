package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// MarshalGraph converts a graph to JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g Graph, w io.Writer) error {
	return writeGraphTo(g, w)
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(g, f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
// Returns validation errors for malformed documents or bad edges.
func ReadGraph(r io.Reader) (Graph, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return ToGraph(d)
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
func ReadGraphFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

func writeGraphTo(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
