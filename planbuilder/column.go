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

// ColExpr is a column reference. TabRef is set by the binder; IsParameter
// is true iff the reference resolves in an enclosing scope (it is
// correlated); IsVisible false means this entry was injected only to
// carry a correlated value outward and should not be user-visible
// output (spec §3).
type ColExpr struct {
	ExprBase
	DBName      string
	TabName     string
	ColName     string
	TabRef      TableRef
	IsParameter bool
	IsVisible   bool
}

// NewColExpr builds an unbound column reference as the parser would
// hand it to the binder.
func NewColExpr(dbName, tabName, colName string) *ColExpr {
	c := &ColExpr{DBName: dbName, TabName: tabName, ColName: colName, IsVisible: true}
	c.SetOutputName(colName)
	return c
}

func (c *ColExpr) Children() []Expr { return nil }

func (c *ColExpr) WithChildren(children []Expr) Expr {
	if len(children) != 0 {
		panic("ColExpr: WithChildren expects zero children")
	}
	return c
}

func (c *ColExpr) Clone() Expr {
	cp := *c
	return &cp
}

// Bind implements the column resolution rule of spec §4.4: a qualified
// reference looks up its table by alias (walking parent scopes) and
// locates the column there; an unqualified reference scans the current
// scope's tables for a unique exporter. Either path may resolve through
// an ancestor scope, in which case IsParameter is set and the ColExpr is
// recorded on the resolving TableRef's ColsRefBySubq (spec invariant I4).
func (c *ColExpr) Bind(ctx *BindContext) (Expr, error) {
	var ref TableRef
	var foundIn *BindContext

	if c.TabName != "" {
		t, at := ctx.FindTable(c.TabName)
		if t == nil {
			return nil, qerr.ErrTableNotExists.New(c.TabName)
		}
		col, err := t.LocateColumn(c.ColName)
		if err != nil {
			return nil, err
		}
		if col == nil {
			return nil, qerr.ErrColumnNotFound.New(c.ColName)
		}
		ref, foundIn = t, at
	} else {
		t, at, err := ctx.resolveUnqualified(c.ColName)
		if err != nil {
			return nil, err
		}
		ref, foundIn = t, at
	}

	c.TabRef = ref
	if foundIn != ctx {
		c.IsParameter = true
		ref.addColRefBySubq(c)
	}
	c.SetBounded(true)
	return c, nil
}

func (c *ColExpr) String() string {
	if c.TabName != "" {
		return c.TabName + "." + c.ColName
	}
	return c.ColName
}
