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

import "github.com/caterby/qpmodel/qerr"

// queryRefBase is the shared implementation behind FromQueryRef and
// CTEQueryRef: both expose a nested SelectStmt's output under an alias,
// optionally renaming its columns through ColNames (spec §3, the
// "FromQuery with rename list R" contract). cols[i] is a synthetic,
// already-bound ColExpr naming output column i; items[i] is the actual
// producing expression from Query's selection list, wrapped in an
// ExprRef so an outer reference to e.g. an aggregate result does not
// re-evaluate the aggregate.
type queryRefBase struct {
	AliasName string
	ColNames  []string
	Query     *SelectStmt

	cols      []*ColExpr
	items     []Expr
	refBySubq []*ColExpr
}

// buildOutput materializes the exported column list. A rename list R
// need not cover every inner column: spec §4.2 only requires
// |R| <= |inner.selection|, narrowing the export to the first |R|
// columns when R is shorter. Only a rename list longer than the inner
// selection is an error.
func (q *queryRefBase) buildOutput(owner TableRef) error {
	sel := q.Query.Selection
	if len(q.ColNames) > len(sel) {
		return qerr.ErrRenameOverflow.New(q.AliasName, len(sel), len(q.ColNames))
	}
	n := len(sel)
	if len(q.ColNames) > 0 {
		n = len(q.ColNames)
	}
	q.cols = make([]*ColExpr, n)
	q.items = make([]Expr, n)
	for i := 0; i < n; i++ {
		item := sel[i]
		name := item.OutputName()
		if len(q.ColNames) > 0 {
			name = q.ColNames[i]
		}
		c := NewColExpr("", q.AliasName, name)
		c.TabRef = owner
		c.SetBounded(true)
		q.cols[i] = c
		q.items[i] = NewExprRef(item)
	}
	return nil
}

func (q *queryRefBase) Alias() string { return q.AliasName }

func (q *queryRefBase) AllColumnRefs() []*ColExpr { return q.cols }

func (q *queryRefBase) LocateColumn(name string) (*ColExpr, error) {
	return locateColumnByName(q.cols, name)
}

func (q *queryRefBase) AddOuterRefsToOutput(output []*ColExpr) []*ColExpr {
	return addOuterRefsToOutput(q.refBySubq, output)
}

func (q *queryRefBase) ColsRefBySubq() []*ColExpr { return q.refBySubq }

func (q *queryRefBase) addColRefBySubq(c *ColExpr) {
	q.refBySubq = appendColRefBySubq(q.refBySubq, c)
}

// FromQueryRef is a FROM-clause subquery: `(SELECT ...) AS alias(cols...)`.
type FromQueryRef struct {
	*queryRefBase
}

func NewFromQueryRef(alias string, colNames []string, query *SelectStmt) *FromQueryRef {
	return &FromQueryRef{queryRefBase: &queryRefBase{AliasName: alias, ColNames: colNames, Query: query}}
}

// bind binds the nested statement against the outer scope as parent,
// then materializes the output column list from its bound selection.
func (f *FromQueryRef) bind(ctx *BindContext) error {
	if _, err := f.Query.Bind(ctx); err != nil {
		return err
	}
	return f.buildOutput(f)
}

// CTEQueryRef is a WITH-clause common table expression. Bind binds each
// entry of a statement's CTEFrom in that statement's scope, and
// BindContext.FindCTE finds it by name through the scope chain. The
// Builder resolves FROM-clause table names through the catalog only, so
// a FROM item naming a CTE is not replaced by its CTEQueryRef and fails
// with ErrTableNotExists.
type CTEQueryRef struct {
	*queryRefBase
}

func NewCTEQueryRef(alias string, colNames []string, query *SelectStmt) *CTEQueryRef {
	return &CTEQueryRef{queryRefBase: &queryRefBase{AliasName: alias, ColNames: colNames, Query: query}}
}

// bind binds the CTE body once against parent (idempotent: a body that
// is already bound is not rebound, and an output list that is already
// built is not rebuilt) and builds its output.
func (cq *CTEQueryRef) bind(ctx *BindContext) error {
	if !cq.Query.Bounded {
		if _, err := cq.Query.Bind(ctx); err != nil {
			return err
		}
	}
	if cq.cols == nil {
		return cq.buildOutput(cq)
	}
	return nil
}
