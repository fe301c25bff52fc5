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

// CastExpr casts Child to TypeName (spec §6 for the recognized DDL type
// vocabulary; the binder does not validate the cast beyond resolving
// Child, per spec §1 "does not validate types beyond resolving
// references").
type CastExpr struct {
	ExprBase
	Child    Expr
	TypeName string
}

func NewCast(child Expr, typeName string) *CastExpr {
	return &CastExpr{Child: child, TypeName: typeName}
}

func (c *CastExpr) Children() []Expr { return []Expr{c.Child} }

func (c *CastExpr) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("CastExpr: WithChildren expects exactly one child")
	}
	n := *c
	n.Child = children[0]
	return &n
}

func (c *CastExpr) Clone() Expr {
	n := *c
	n.Child = c.Child.Clone()
	return &n
}

func (c *CastExpr) Bind(ctx *BindContext) (Expr, error) {
	child, err := c.Child.Bind(ctx)
	if err != nil {
		return nil, err
	}
	c.Child = child
	c.SetBounded(true)
	return c, nil
}

func (c *CastExpr) String() string { return "CAST(" + c.Child.String() + " AS " + c.TypeName + ")" }
