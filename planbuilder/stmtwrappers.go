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

package planbuilder

// These five statement kinds are specified only so they do not silently
// alter the binder contract (spec §6): none of them carry their own
// name-resolution rules beyond "bind the embedded SELECT, if any, under
// a fresh context." CLI/storage/file-I/O handling of them is out of
// scope.

// InsertStmt is `INSERT INTO tab [(cols...)] SELECT ...` or the
// VALUES-list form (modeled as a SELECT over a ValuesTableRef by the
// AST-build layer, so InsertStmt always carries a Source).
type InsertStmt struct {
	Target  *BaseTableRef
	Columns []string
	Source  *SelectStmt
}

// Bind binds Source under a fresh top-level context; Target's columns
// are validated against Columns by the caller once Source is planned.
func (s *InsertStmt) Bind() error {
	_, err := s.Source.Bind(nil)
	return err
}

// CopyStmt is a bulk load/unload between Target and an external file.
type CopyStmt struct {
	Target   *BaseTableRef
	FileName string
	ToFile   bool // false: file -> table, true: table -> file
}

// CreateTableStmt is `CREATE TABLE tab (col type, ...)`; ColTypes are
// the parsed spec §6 DDL type names.
type CreateTableStmt struct {
	Target   *BaseTableRef
	ColNames []string
	ColTypes []DDLType
}

// CreateIndexStmt is `CREATE INDEX name ON tab (cols...)`.
type CreateIndexStmt struct {
	Target    *BaseTableRef
	IndexName string
	Columns   []string
	Unique    bool
}

// AnalyzeStmt is `ANALYZE tab`, refreshing whatever catalog-side
// statistics back the optimizer downstream of this package.
type AnalyzeStmt struct {
	Target *BaseTableRef
}
