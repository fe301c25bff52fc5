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

import (
	"strconv"

	"github.com/caterby/qpmodel/qerr"
)

// ValuesTableRef is a literal-row FROM source: `(VALUES (1,2), (3,4)) AS
// alias(a, b)` (SUPPLEMENTED FEATURES, grounded on the corpus's
// *ast.ValuesStatement data-source branch).
type ValuesTableRef struct {
	AliasName string
	ColNames  []string
	Rows      [][]Expr

	cols      []*ColExpr
	refBySubq []*ColExpr
}

func NewValuesTableRef(alias string, colNames []string, rows [][]Expr) *ValuesTableRef {
	return &ValuesTableRef{AliasName: alias, ColNames: colNames, Rows: rows}
}

func (v *ValuesTableRef) Alias() string { return v.AliasName }

func (v *ValuesTableRef) AllColumnRefs() []*ColExpr { return v.cols }

func (v *ValuesTableRef) LocateColumn(name string) (*ColExpr, error) {
	return locateColumnByName(v.cols, name)
}

func (v *ValuesTableRef) AddOuterRefsToOutput(output []*ColExpr) []*ColExpr {
	return addOuterRefsToOutput(v.refBySubq, output)
}

func (v *ValuesTableRef) ColsRefBySubq() []*ColExpr { return v.refBySubq }

func (v *ValuesTableRef) addColRefBySubq(c *ColExpr) {
	v.refBySubq = appendColRefBySubq(v.refBySubq, c)
}

// bind type-checks row arity against ColNames, binds every literal cell
// (constant-folding and literal validation happen downstream of this
// package), and materializes the exported column list.
func (v *ValuesTableRef) bind(ctx *BindContext) error {
	if len(v.Rows) == 0 {
		return qerr.ErrSemantic.New("VALUES requires at least one row")
	}
	width := len(v.ColNames)
	if width == 0 {
		width = len(v.Rows[0])
	}
	for _, row := range v.Rows {
		if len(row) != width {
			return qerr.ErrArityMismatch.New("VALUES")
		}
		for i, cell := range row {
			b, err := cell.Bind(ctx)
			if err != nil {
				return err
			}
			row[i] = b
		}
	}
	v.cols = make([]*ColExpr, width)
	for i := 0; i < width; i++ {
		name := v.Rows[0][i].OutputName()
		if len(v.ColNames) > 0 {
			name = v.ColNames[i]
		} else if name == "" {
			name = columnOrdinalName(i)
		}
		c := NewColExpr("", v.AliasName, name)
		c.TabRef = v
		c.SetBounded(true)
		v.cols[i] = c
	}
	return nil
}

func columnOrdinalName(i int) string {
	return "col" + strconv.Itoa(i+1)
}
