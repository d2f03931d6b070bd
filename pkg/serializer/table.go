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
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

const defaultValueKey = "value"

// table is the text rendering of a value: scalar fields keyed by their
// dotted json path, and one section per list of records.
type table struct {
	keys     []string
	values   map[string]string
	sections []section
}

// section is a list of records rendered one row per record.
type section struct {
	name    string
	columns []string
	rows    []map[string]string
}

func newTable() *table {
	return &table{values: make(map[string]string)}
}

// writeTable renders data as a FIELD/VALUE table followed by a column
// table for every list of records, such as search results.
func writeTable(out io.Writer, data any) error {
	t := newTable()
	t.add(reflect.ValueOf(data), "", true)

	if len(t.keys) == 0 && len(t.sections) == 0 {
		_, err := fmt.Fprintln(out, "<empty>")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if len(t.keys) > 0 {
		fmt.Fprintln(tw, "FIELD\tVALUE")
		fmt.Fprintln(tw, "-----\t-----")
		for _, k := range t.keys {
			fmt.Fprintf(tw, "%s\t%s\n", k, t.values[k])
		}
	}

	for i, s := range t.sections {
		if i > 0 || len(t.keys) > 0 {
			fmt.Fprintln(tw)
		}
		if s.name != "" {
			fmt.Fprintf(tw, "%s:\n", s.name)
		}
		header := make([]string, len(s.columns))
		for j, c := range s.columns {
			header[j] = strings.ToUpper(c)
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, row := range s.rows {
			cells := make([]string, len(s.columns))
			for j, c := range s.columns {
				cells[j] = row[c]
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}
	return tw.Flush()
}

func (t *table) set(key, value string) {
	if key == "" {
		key = defaultValueKey
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// add flattens val under key. Lists of records become sections when
// sections is set and indexed keys otherwise.
func (t *table) add(val reflect.Value, key string, sections bool) {
	val, ok := indirect(val)
	if !ok {
		if key != "" {
			t.set(key, "")
		}
		return
	}

	// quantities and times keep their unexported state; print them whole
	if s, ok := stringer(val); ok {
		t.set(key, s)
		return
	}

	//nolint:exhaustive // scalars all go to default
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name, inline := fieldKey(field)
			switch {
			case name == "-":
				continue
			case inline:
				t.add(val.Field(i), key, sections)
			default:
				t.add(val.Field(i), joinKey(key, name), sections)
			}
		}
	case reflect.Map:
		mapKeys := val.MapKeys()
		sort.Slice(mapKeys, func(i, j int) bool {
			return fmt.Sprint(mapKeys[i].Interface()) < fmt.Sprint(mapKeys[j].Interface())
		})
		for _, mk := range mapKeys {
			t.add(val.MapIndex(mk), joinKey(key, fmt.Sprint(mk.Interface())), sections)
		}
	case reflect.Slice, reflect.Array:
		switch {
		case isScalarList(val):
			t.set(key, joinScalars(val))
		case sections:
			t.addSection(key, val)
		default:
			for i := 0; i < val.Len(); i++ {
				t.add(val.Index(i), joinKey(key, fmt.Sprintf("[%d]", i)), false)
			}
		}
	default:
		t.set(key, fmt.Sprint(val.Interface()))
	}
}

func (t *table) addSection(name string, list reflect.Value) {
	s := section{name: name}
	seen := make(map[string]bool)
	for i := 0; i < list.Len(); i++ {
		row := newTable()
		row.add(list.Index(i), "", false)
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				s.columns = append(s.columns, k)
			}
		}
		s.rows = append(s.rows, row.values)
	}
	t.sections = append(t.sections, s)
}

// indirect follows pointers and interfaces; false means nil.
func indirect(val reflect.Value) (reflect.Value, bool) {
	if !val.IsValid() {
		return val, false
	}
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return val, false
		}
		val = val.Elem()
	}
	return val, true
}

func stringer(val reflect.Value) (string, bool) {
	if val.Kind() != reflect.Struct || !val.CanInterface() {
		return "", false
	}
	s, ok := val.Interface().(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// fieldKey returns the json name of a field, and whether an embedded
// struct without one is inlined into its parent.
func fieldKey(field reflect.StructField) (string, bool) {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "" {
		if field.Anonymous {
			return "", true
		}
		return field.Name, false
	}
	return name, false
}

func isScalarList(val reflect.Value) bool {
	for i := 0; i < val.Len(); i++ {
		elem, ok := indirect(val.Index(i))
		if !ok {
			continue
		}
		if _, ok := stringer(elem); ok {
			continue
		}
		//nolint:exhaustive // only containers matter here
		switch elem.Kind() {
		case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
			return false
		}
	}
	return true
}

func joinScalars(val reflect.Value) string {
	parts := make([]string, 0, val.Len())
	for i := 0; i < val.Len(); i++ {
		elem, ok := indirect(val.Index(i))
		if !ok {
			continue
		}
		if s, ok := stringer(elem); ok {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, fmt.Sprint(elem.Interface()))
	}
	return strings.Join(parts, ", ")
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
