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

// LogicExpr is a boolean AND/OR connective over two operands.
type LogicExpr struct {
	ExprBase
	Op          string // "and" | "or"
	Left, Right Expr
}

func NewLogic(op string, left, right Expr) *LogicExpr {
	return &LogicExpr{Op: op, Left: left, Right: right}
}

// AndAll folds a non-empty list of Exprs into a single left-associative
// AND conjunction; used to combine join constraints (spec §4.5).
func AndAll(exprs []Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	acc := exprs[0]
	for _, e := range exprs[1:] {
		acc = NewLogic("and", acc, e)
	}
	return acc
}

func (l *LogicExpr) Children() []Expr { return []Expr{l.Left, l.Right} }

func (l *LogicExpr) WithChildren(children []Expr) Expr {
	if len(children) != 2 {
		panic("LogicExpr: WithChildren expects exactly two children")
	}
	n := *l
	n.Left, n.Right = children[0], children[1]
	return &n
}

func (l *LogicExpr) Clone() Expr {
	n := *l
	n.Left = l.Left.Clone()
	n.Right = l.Right.Clone()
	return &n
}

func (l *LogicExpr) Bind(ctx *BindContext) (Expr, error) {
	left, err := l.Left.Bind(ctx)
	if err != nil {
		return nil, err
	}
	right, err := l.Right.Bind(ctx)
	if err != nil {
		return nil, err
	}
	l.Left, l.Right = left, right
	l.SetBounded(true)
	return l, nil
}

func (l *LogicExpr) String() string {
	return "(" + l.Left.String() + " " + l.Op + " " + l.Right.String() + ")"
}
