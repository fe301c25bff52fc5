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

// InListExpr is `Child IN (list...)` over a literal/scalar list (as
// opposed to SubqueryExpr's `Child IN (SELECT ...)` form).
type InListExpr struct {
	ExprBase
	Child Expr
	List  []Expr
}

func NewInList(child Expr, list []Expr) *InListExpr {
	return &InListExpr{Child: child, List: list}
}

func (i *InListExpr) Children() []Expr {
	return append([]Expr{i.Child}, i.List...)
}

func (i *InListExpr) WithChildren(children []Expr) Expr {
	n := *i
	n.Child = children[0]
	n.List = children[1:]
	return &n
}

func (i *InListExpr) Clone() Expr {
	n := *i
	n.Child = i.Child.Clone()
	n.List = make([]Expr, len(i.List))
	for j, e := range i.List {
		n.List[j] = e.Clone()
	}
	return &n
}

func (i *InListExpr) Bind(ctx *BindContext) (Expr, error) {
	child, err := i.Child.Bind(ctx)
	if err != nil {
		return nil, err
	}
	i.Child = child
	for j, e := range i.List {
		b, err := e.Bind(ctx)
		if err != nil {
			return nil, err
		}
		i.List[j] = b
	}
	i.SetBounded(true)
	return i, nil
}

func (i *InListExpr) String() string { return i.Child.String() + " IN (...)" }
