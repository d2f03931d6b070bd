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

// Package serializer reads and writes brewkit documents as JSON, YAML or
// aligned text tables.
//
// Writers render command output. YAML is the CLI default, JSON is used by
// the API, and the table format flattens a document into a FIELD/VALUE
// block followed by one section per list of records. Tables are write-only.
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outputPath)
//	defer func() {
//	    if c, ok := w.(serializer.Closer); ok {
//	        _ = c.Close()
//	    }
//	}()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// Readers load dataset overrides from a local path or an http(s) URL. The
// format comes from the extension (.json, .yaml, .yml), a trailing .gz is
// decompressed, and URL query strings are ignored:
//
//	hops, err := serializer.FromFileWithContext[[]catalog.Hop](ctx, "https://example.com/hops.yaml.gz")
//
// Remote reads go through HttpReader, which pools connections, requires TLS
// 1.2, applies the pkg/defaults timeouts and caps the response size.
//
// RespondJSON writes API responses for pkg/server and pkg/api.
package serializer
