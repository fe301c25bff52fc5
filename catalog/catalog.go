// Copyright 2020-2021 Dolthub, Inc.
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

// Package catalog defines the read-only table/column metadata lookup
// the binder consumes (spec §4.3). The catalog itself — a real database
// dictionary, a storage engine's system tables, whatever backs it — is
// an external collaborator; this package only pins the interface.
package catalog

import "strings"

// ColumnDef describes one column of a relation.
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
}

// TableDef describes a relation's ordered column list.
type TableDef struct {
	Name string
	Cols []ColumnDef
}

// Col looks up a column by name (case-insensitive), returning ok=false
// if absent.
func (t *TableDef) Col(name string) (ColumnDef, bool) {
	for _, c := range t.Cols {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return ColumnDef{}, false
}

// Catalog is the read-only metadata surface the Binder consumes. A
// fresh lookup per reference is assumed cheap (spec §5); the binder
// never caches catalog results across statements.
type Catalog interface {
	// TryTable returns the table definition for name, or nil if the
	// relation does not exist.
	TryTable(name string) *TableDef
	// Table returns the table definition for name, failing with
	// qerr.ErrTableNotExists if absent.
	Table(name string) (*TableDef, error)
	// TableCols returns the ordered column list of name. Callers must
	// have already verified the table exists.
	TableCols(name string) []ColumnDef
}
