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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testStyle struct {
	Name   string  `json:"name" yaml:"name"`
	ABVMin float64 `json:"abv_min" yaml:"abv_min"`
	ABVMax float64 `json:"abv_max" yaml:"abv_max"`
}

type testGrams struct {
	g float64
}

func (g testGrams) String() string { return "28g" }

var testStyles = []testStyle{
	{Name: "Dry Stout", ABVMin: 4, ABVMax: 5},
	{Name: "Saison", ABVMin: 5, ABVMax: 7},
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Serialize(context.Background(), testStyles); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testStyle
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 || result[1].Name != "Saison" {
		t.Errorf("Unexpected data: %+v", result)
	}

	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("Expected indented JSON")
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	if err := writer.Serialize(context.Background(), testStyles); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testStyle
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 || result[0].ABVMax != 5 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), testStyles); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a header and two rows, got:\n%s", buf.String())
	}
	if got := strings.Fields(lines[0]); strings.Join(got, " ") != "NAME ABV_MIN ABV_MAX" {
		t.Errorf("Unexpected column header %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Saison") {
		t.Errorf("Expected Saison row, got %q", lines[2])
	}
}

func TestWriter_SerializeTable_Document(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type Meta struct {
		Kind string `json:"kind"`
	}
	doc := struct {
		Meta `json:",inline"`
		Spec []testStyle `json:"spec"`
	}{Meta: Meta{Kind: "BeerStyleList"}, Spec: testStyles}

	if err := writer.Serialize(context.Background(), doc); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"FIELD", "BeerStyleList", "spec:", "ABV_MIN", "Dry Stout"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in:\n%s", want, output)
		}
	}
}

func TestWriter_SerializeTable_ScalarLists(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name    string   `json:"name"`
		Purpose []string `json:"purpose"`
	}{Name: "Cascade", Purpose: []string{"Aroma", "Bittering"}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Aroma, Bittering") {
		t.Errorf("Expected joined list, got:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable_Stringer(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Sugar  string
		Weight testGrams
	}{Sugar: "Honey", Weight: testGrams{g: 28}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Weight") || !strings.Contains(output, "28g") {
		t.Errorf("Expected stringer value in table, got:\n%s", output)
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), struct{}{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("Expected <empty>, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"kind": "Calculation",
		"metadata": map[string]string{
			"calculator": "abv",
		},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), "metadata.calculator") {
		t.Errorf("Expected nested map key, got:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	var id *string
	data := struct {
		Name string
		ID   *string
	}{Name: "US-05", ID: id}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if !strings.Contains(buf.String(), "ID") {
		t.Errorf("Expected nil field to be listed, got:\n%s", buf.String())
	}
}

func TestWriter_CanceledContext(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := writer.Serialize(ctx, testStyles); err == nil {
		t.Fatal("Expected error for canceled context")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if err := writer.Serialize(context.Background(), testStyles[0]); err != nil {
		t.Fatalf("Serialize should fall back to JSON: %v", err)
	}

	var result testStyle
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}
	if result.Name != "Dry Stout" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestNewWriter_DefaultsToStdout(t *testing.T) {
	writer := NewWriter(FormatJSON, nil)
	if writer.output != os.Stdout {
		t.Error("Expected stdout when output is nil")
	}
}

func TestWriter_Close(t *testing.T) {
	writer := NewStdoutWriter(FormatYAML)
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		ser := NewFileWriterOrStdout(FormatJSON, "  ")
		w, ok := ser.(*Writer)
		if !ok {
			t.Fatalf("Expected *Writer, got %T", ser)
		}
		if w.output != os.Stdout {
			t.Error("Expected stdout writer for empty path")
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		ser := NewFileWriterOrStdout(FormatYAML, path)

		if err := ser.Serialize(context.Background(), testStyles); err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if c, ok := ser.(Closer); ok {
			if err := c.Close(); err != nil {
				t.Fatalf("Close failed: %v", err)
			}
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if !strings.Contains(string(content), "name: Saison") {
			t.Errorf("Unexpected file content:\n%s", content)
		}
	})

	t.Run("invalid path falls back to stdout", func(t *testing.T) {
		ser := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "dir", "out.json"))
		w, ok := ser.(*Writer)
		if !ok || w.output != os.Stdout {
			t.Error("Expected stdout fallback for invalid path")
		}
	})
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{"xml", true},
		{"", true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.want {
			t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("Expected 3 formats, got %v", formats)
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("Supported format %q reports unknown", f)
		}
	}
}
