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

import "fmt"

// SelStarExpr is a `*` or `tab.*` selection item. It never survives
// binding: the selection-list binder (spec §4.4 step 3) removes every
// SelStarExpr and splices in the concrete ColExprs it expands to (spec
// invariant I2), so SelStarExpr.Bind is never called in a well-formed
// pipeline — it exists to give the AST-to-Expr translation a concrete
// node type to build before expansion runs.
type SelStarExpr struct {
	ExprBase
	TabName string // "" for an unqualified `*`
}

func NewSelStar(tabName string) *SelStarExpr { return &SelStarExpr{TabName: tabName} }

func (s *SelStarExpr) Children() []Expr { return nil }

func (s *SelStarExpr) WithChildren(children []Expr) Expr {
	if len(children) != 0 {
		panic("SelStarExpr: WithChildren expects zero children")
	}
	return s
}

func (s *SelStarExpr) Clone() Expr {
	n := *s
	return &n
}

func (s *SelStarExpr) Bind(ctx *BindContext) (Expr, error) {
	panic("SelStarExpr.Bind: star expansion must be handled by the selection-list binder, not invoked directly")
}

func (s *SelStarExpr) String() string {
	if s.TabName == "" {
		return "*"
	}
	return fmt.Sprintf("%s.*", s.TabName)
}
