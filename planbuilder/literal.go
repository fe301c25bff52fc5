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

// Literal is a constant value carried straight from the AST.
type Literal struct {
	ExprBase
	Value interface{}
}

func NewLiteral(value interface{}) *Literal {
	return &Literal{Value: value}
}

func (l *Literal) Children() []Expr { return nil }

func (l *Literal) WithChildren(children []Expr) Expr {
	if len(children) != 0 {
		panic("Literal: WithChildren expects zero children")
	}
	return l
}

func (l *Literal) Clone() Expr {
	c := *l
	return &c
}

func (l *Literal) Bind(ctx *BindContext) (Expr, error) {
	l.SetBounded(true)
	return l, nil
}

func (l *Literal) String() string { return fmt.Sprintf("%v", l.Value) }
