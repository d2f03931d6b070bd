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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

const gzipExt = ".gz"

// FormatFromPath picks a format from the extension of a file path or URL:
// .json, .yaml/.yml or .table/.txt, optionally followed by .gz. Matching is
// case-insensitive and ignores URL query and fragment. Anything else is JSON.
func FormatFromPath(filePath string) Format {
	p := filePath
	if IsURL(filePath) {
		if u, err := url.Parse(filePath); err == nil {
			p = u.Path
		}
	}
	p = strings.TrimSuffix(strings.ToLower(p), gzipExt)

	switch path.Ext(p) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

func isGzip(filePath string) bool {
	if IsURL(filePath) {
		if u, err := url.Parse(filePath); err == nil {
			filePath = u.Path
		}
	}
	return strings.HasSuffix(strings.ToLower(filePath), gzipExt)
}

// Reader decodes JSON or YAML documents. Readers from NewFileReader hold
// open resources until Close; Close is safe to repeat.
type Reader struct {
	format  Format
	input   io.Reader
	closers []io.Closer
}

// NewReader returns a Reader over input. Input that is an io.Closer is
// closed by Reader.Close. Table is write-only and is rejected.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if err := checkReadFormat(format); err != nil {
		return nil, err
	}
	r := &Reader{format: format, input: input}
	if c, ok := input.(io.Closer); ok {
		r.closers = append(r.closers, c)
	}
	return r, nil
}

func checkReadFormat(format Format) error {
	switch {
	case format.IsUnknown():
		return fmt.Errorf("unknown format: %s", format)
	case format == FormatTable:
		return errors.New("table format does not support deserialization")
	default:
		return nil
	}
}

// NewFileReader is NewFileReaderWithContext with a background context.
func NewFileReader(format Format, filePath string) (*Reader, error) {
	return NewFileReaderWithContext(context.Background(), format, filePath)
}

// NewFileReaderWithContext opens a local file or downloads an http(s) URL
// with HttpReader. A ".gz" suffix is decompressed transparently.
func NewFileReaderWithContext(ctx context.Context, format Format, filePath string) (*Reader, error) {
	if err := checkReadFormat(format); err != nil {
		return nil, err
	}

	r := &Reader{format: format}

	if IsURL(filePath) {
		data, err := NewHttpReader().ReadWithContext(ctx, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		r.input = bytes.NewReader(data)
	} else {
		file, err := os.Open(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		r.input = file
		r.closers = append(r.closers, file)
	}

	if isGzip(filePath) {
		zr, err := gzip.NewReader(r.input)
		if err != nil {
			_ = r.Close()
			return nil, fmt.Errorf("failed to read gzip stream: %w", err)
		}
		r.input = zr
		r.closers = append(r.closers, zr)
	}

	return r, nil
}

// Deserialize decodes the next document into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New("reader is nil")
	}
	if r.input == nil {
		return errors.New("input source is nil")
	}

	var err error
	switch r.format {
	case FormatJSON:
		err = json.NewDecoder(r.input).Decode(v)
	case FormatYAML:
		err = yaml.NewDecoder(r.input).Decode(v)
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", strings.ToUpper(string(r.format)), err)
	}
	return nil
}

// Close releases the reader's resources, innermost first.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i].Close())
	}
	r.closers = nil
	return errors.Join(errs...)
}

// FromFile is FromFileWithContext with a background context.
func FromFile[T any](path string) (*T, error) {
	return FromFileWithContext[T](context.Background(), path)
}

// FromFileWithContext loads a T from a file path or http(s) URL, picking
// the format with FormatFromPath:
//
//	hops, err := serializer.FromFileWithContext[[]catalog.Hop](ctx, "hops.yaml.gz")
func FromFileWithContext[T any](ctx context.Context, path string) (*T, error) {
	format := FormatFromPath(path)

	r, err := NewFileReaderWithContext(ctx, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "path", path, "error", closeErr)
		}
	}()

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("loaded file", "path", path, "format", format)
	return &v, nil
}
