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

// BinaryExpr is a two-operand scalar operator (=, <, +, LIKE, ...).
// BETWEEN is desugared by the caller constructing the AST into
// (a >= b) AND (a <= c) before it ever reaches Bind (spec §4.1); this
// type never sees a "between" Op.
type BinaryExpr struct {
	ExprBase
	Op          string
	Left, Right Expr
}

func NewBinary(op string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

func (b *BinaryExpr) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b *BinaryExpr) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("BinaryExpr: WithChildren expects exactly two children")
	}
	n := *b
	n.Left, n.Right = children[0], children[1]
	return &n
}

func (b *BinaryExpr) Clone() Expr {
	n := *b
	n.Left = b.Left.Clone()
	n.Right = b.Right.Clone()
	return &n
}

func (b *BinaryExpr) Bind(ctx *BindContext) (Expr, error) {
	l, err := b.Left.Bind(ctx)
	if err != nil {
		return nil, err
	}
	r, err := b.Right.Bind(ctx)
	if err != nil {
		return nil, err
	}
	b.Left, b.Right = l, r
	b.SetBounded(true)
	return b, nil
}

func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}

// NewBetween builds the (a >= lo) AND (a <= hi) desugaring of BETWEEN
// described in spec §4.1, for callers translating an AST BETWEEN node.
func NewBetween(a, lo, hi Expr) Expr {
	return NewLogic("and", NewBinary(">=", a, lo), NewBinary("<=", a.Clone(), hi))
}
