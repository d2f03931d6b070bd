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

package header

import (
	"time"
)

// APIVersion is the schema version of every document brewkit emits.
const APIVersion = "brewkit/v1"

// Metadata keys.
const (
	MetadataTimestamp  = "timestamp"
	MetadataVersion    = "version"
	MetadataCalculator = "calculator"
)

// Kind represents the type of brewkit document.
type Kind string

const (
	KindCalculation   Kind = "Calculation"
	KindBeerStyleList Kind = "BeerStyleList"
	KindHopList       Kind = "HopList"
	KindYeastList     Kind = "YeastList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// Header carries the kind, schema version and metadata of a document.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the Header to the given kind and stamps it with the current
// UTC time and, when set, the tool version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		MetadataTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Document is a Header followed by a kind-specific spec.
type Document struct {
	Header `json:",inline" yaml:",inline"`

	Spec any `json:"spec" yaml:"spec"`
}

// NewDocument builds an initialized document. The calculator name, when
// set, is recorded in the metadata.
func NewDocument(kind Kind, version, calculator string, spec any) *Document {
	d := &Document{Spec: spec}
	d.Init(kind, version)
	if calculator != "" {
		d.Metadata[MetadataCalculator] = calculator
	}
	return d
}
