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

// OrderTerm pairs a sort expression with its direction. It is used both
// by SelectStmt.Order and by WindowSpec.OrderBy.
type OrderTerm struct {
	ExprBase
	Child Expr
	Desc  bool
}

func NewOrderTerm(child Expr, desc bool) *OrderTerm {
	return &OrderTerm{Child: child, Desc: desc}
}

func (o *OrderTerm) Children() []Expr { return []Expr{o.Child} }

func (o *OrderTerm) WithChildren(children []Expr) Expr {
	if len(children) != 1 {
		panic("OrderTerm: WithChildren expects exactly one child")
	}
	n := *o
	n.Child = children[0]
	return &n
}

func (o *OrderTerm) Clone() Expr {
	n := *o
	n.Child = o.Child.Clone()
	return &n
}

func (o *OrderTerm) Bind(ctx *BindContext) (Expr, error) {
	b, err := o.Child.Bind(ctx)
	if err != nil {
		return nil, err
	}
	o.Child = b
	o.SetBounded(true)
	return o, nil
}

func (o *OrderTerm) String() string {
	if o.Desc {
		return o.Child.String() + " DESC"
	}
	return o.Child.String() + " ASC"
}
