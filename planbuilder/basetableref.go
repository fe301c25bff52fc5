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

import "github.com/caterby/qpmodel/catalog"

// BaseTableRef is a FROM-clause reference to a catalog table, optionally
// renamed by an alias (spec §3, §4.2).
type BaseTableRef struct {
	TableName  string
	AliasName  string
	Def        *catalog.TableDef
	cols       []*ColExpr
	refBySubq  []*ColExpr
}

// NewBaseTableRef builds a base relation reference and materializes its
// exported ColExprs from def, each already pointing TabRef back at this
// ref (spec §4.2: "a table ref's own column set is fixed at build time").
func NewBaseTableRef(tableName, alias string, def *catalog.TableDef) *BaseTableRef {
	if alias == "" {
		alias = tableName
	}
	t := &BaseTableRef{TableName: tableName, AliasName: alias, Def: def}
	for _, cd := range def.Cols {
		c := NewColExpr("", alias, cd.Name)
		c.TabRef = t
		c.SetBounded(true)
		t.cols = append(t.cols, c)
	}
	return t
}

func (t *BaseTableRef) Alias() string { return t.AliasName }

func (t *BaseTableRef) AllColumnRefs() []*ColExpr { return t.cols }

func (t *BaseTableRef) LocateColumn(name string) (*ColExpr, error) {
	return locateColumnByName(t.cols, name)
}

func (t *BaseTableRef) AddOuterRefsToOutput(output []*ColExpr) []*ColExpr {
	return addOuterRefsToOutput(t.refBySubq, output)
}

func (t *BaseTableRef) ColsRefBySubq() []*ColExpr { return t.refBySubq }

func (t *BaseTableRef) addColRefBySubq(c *ColExpr) {
	t.refBySubq = appendColRefBySubq(t.refBySubq, c)
}

// bind is a no-op: a base table owns no expressions of its own to bind.
func (t *BaseTableRef) bind(ctx *BindContext) error { return nil }

// ExternalTableRef is a FROM-clause reference to data backed by a file
// rather than a cataloged table (SUPPLEMENTED FEATURES, grounded on the
// ast.ExternalTable / buildDataSource file-source branch).
type ExternalTableRef struct {
	*BaseTableRef
	FileName string
}

func NewExternalTableRef(tableName, alias, fileName string, def *catalog.TableDef) *ExternalTableRef {
	return &ExternalTableRef{BaseTableRef: NewBaseTableRef(tableName, alias, def), FileName: fileName}
}
