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

package planbuilder_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/caterby/qpmodel/planbuilder"
)

// TestReplaceOutputNameToExprIdempotent is a property-style "Law" test
// (spec §8): running the alias rewrite twice produces the same result
// as running it once.
func TestReplaceOutputNameToExprIdempotent(t *testing.T) {
	g := NewWithT(t)

	total := planbuilder.NewBinary("+", planbuilder.NewLiteral(1), planbuilder.NewLiteral(2))
	total.SetAlias("total")
	total.SetOutputName("total")
	selection := []planbuilder.Expr{total}

	order := planbuilder.NewColExpr("", "", "total")

	once := planbuilder.ReplaceOutputNameToExpr(order, selection)
	twice := planbuilder.ReplaceOutputNameToExpr(once, selection)

	g.Expect(once.String()).To(Equal(twice.String()))
	g.Expect(once.String()).To(Equal(total.String()))
}

func TestCloneCopiesTabRefByValue(t *testing.T) {
	g := NewWithT(t)

	col := planbuilder.NewColExpr("", "t1", "a")
	tab := &planbuilder.BaseTableRef{}
	col.TabRef = tab

	cloned := col.Clone().(*planbuilder.ColExpr)
	g.Expect(cloned.TabRef).To(BeIdenticalTo(tab))

	other := &planbuilder.BaseTableRef{}
	cloned.TabRef = other
	g.Expect(col.TabRef).To(BeIdenticalTo(tab), "mutating the clone's TabRef must not affect the original")
}

func TestHasAggFuncSkipsWindowedAggregates(t *testing.T) {
	g := NewWithT(t)

	windowed := planbuilder.NewAggFunc("row_number", nil, false, &planbuilder.WindowSpec{})
	g.Expect(planbuilder.HasAggFunc(windowed)).To(BeFalse())

	plain := planbuilder.NewAggFunc("sum", planbuilder.NewColExpr("", "t1", "a"), false, nil)
	g.Expect(planbuilder.HasAggFunc(plain)).To(BeTrue())
}

func TestHasSubquery(t *testing.T) {
	g := NewWithT(t)

	lit := planbuilder.NewLiteral(1)
	g.Expect(planbuilder.HasSubquery(lit)).To(BeFalse())

	sub := planbuilder.NewSubqueryExpr(planbuilder.SubqueryExists, planbuilder.NewSelectStmt(), nil)
	wrapped := planbuilder.NewUnary("not", sub)
	g.Expect(planbuilder.HasSubquery(wrapped)).To(BeTrue())
}
