// Copyright (c) 2025, The Brewkit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML with two-space indentation.
	FormatYAML Format = "yaml"
	// FormatTable is an aligned FIELD/VALUE block with record sections.
	FormatTable Format = "table"
)

type encodeFunc func(out io.Writer, data any) error

var encoders = map[Format]encodeFunc{
	FormatJSON:  encodeJSON,
	FormatYAML:  encodeYAML,
	FormatTable: writeTable,
}

// IsUnknown reports whether f has no encoder.
func (f Format) IsUnknown() bool {
	_, ok := encoders[f]
	return !ok
}

// SupportedFormats lists output formats in the order help text shows them.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

func encodeJSON(out io.Writer, data any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

func encodeYAML(out io.Writer, data any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// Writer renders calculation and search documents to an output stream.
// Close must be called to release the file of a writer created by
// NewFileWriterOrStdout.
type Writer struct {
	encode encodeFunc
	output io.Writer
	file   *os.File
}

// NewWriter returns a Writer for output, or for os.Stdout when output is
// nil. Unknown formats fall back to JSON with a warning.
func NewWriter(format Format, output io.Writer) *Writer {
	enc, ok := encoders[format]
	if !ok {
		slog.Warn("unknown output format, using json", "format", format)
		enc = encodeJSON
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{encode: enc, output: output}
}

// NewStdoutWriter returns a Writer for os.Stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Writer that creates and writes path. An
// empty path, or one that cannot be created, writes to stdout instead.
func NewFileWriterOrStdout(format Format, path string) Serializer {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewStdoutWriter(format)
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("cannot create output file, using stdout", "path", path, "error", err)
		return NewStdoutWriter(format)
	}

	w := NewWriter(format, f)
	w.file = f
	return w
}

// Close releases the output file, if any. It is safe to call more than once.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	return f.Close()
}

// Serialize encodes data to the output. Nothing is written when ctx is
// already done.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("serialize canceled: %w", err)
	}
	return w.encode(w.output, data)
}
