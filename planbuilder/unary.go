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

// UnaryExpr is a single-operand scalar operator (NOT, unary minus, IS
// NULL, ...).
type UnaryExpr struct {
	ExprBase
	Op    string
	Child Expr
}

func NewUnary(op string, child Expr) *UnaryExpr {
	return &UnaryExpr{Op: op, Child: child}
}

func (u *UnaryExpr) Children() []Expr { return []Expr{u.Child} }

func (u *UnaryExpr) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("UnaryExpr: WithChildren expects exactly one child")
	}
	n := *u
	n.Child = children[0]
	return &n
}

func (u *UnaryExpr) Clone() Expr {
	n := *u
	n.Child = u.Child.Clone()
	return &n
}

func (u *UnaryExpr) Bind(ctx *BindContext) (Expr, error) {
	child, err := u.Child.Bind(ctx)
	if err != nil {
		return nil, err
	}
	u.Child = child
	u.SetBounded(true)
	return u, nil
}

func (u *UnaryExpr) String() string { return u.Op + "(" + u.Child.String() + ")" }
