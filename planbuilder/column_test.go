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

	"github.com/stretchr/testify/require"

	"github.com/caterby/qpmodel/catalog"
	"github.com/caterby/qpmodel/planbuilder"
)

func newBaseTable(t *testing.T, cat *catalog.Fixture, name, alias string) *planbuilder.BaseTableRef {
	t.Helper()
	def, err := cat.Table(name)
	require.NoError(t, err)
	return planbuilder.NewBaseTableRef(name, alias, def)
}

func TestColExprBindQualified(t *testing.T) {
	cat := testCatalog(t)
	ctx := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t1", "t1")))

	col := planbuilder.NewColExpr("", "t1", "a")
	bound, err := col.Bind(ctx)
	require.NoError(t, err)
	require.True(t, bound.Bounded())
	require.False(t, bound.(*planbuilder.ColExpr).IsParameter)
}

func TestColExprBindUnqualifiedAmbiguous(t *testing.T) {
	cat := testCatalog(t)
	ctx := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t1", "t1")))
	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t2", "t2")))

	// "a" is exported by both t1 and t2.
	col := planbuilder.NewColExpr("", "", "a")
	_, err := col.Bind(ctx)
	require.Error(t, err)
}

func TestColExprBindUnqualifiedUnique(t *testing.T) {
	cat := testCatalog(t)
	ctx := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t1", "t1")))
	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t2", "t2")))

	// "b" is exported only by t1.
	col := planbuilder.NewColExpr("", "", "b")
	bound, err := col.Bind(ctx)
	require.NoError(t, err)
	require.Equal(t, "t1", bound.(*planbuilder.ColExpr).TabRef.Alias())
}

func TestColExprBindTableNotFound(t *testing.T) {
	ctx := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	col := planbuilder.NewColExpr("", "missing", "a")
	_, err := col.Bind(ctx)
	require.Error(t, err)
}

func TestColExprBindCorrelatedMarksParameter(t *testing.T) {
	cat := testCatalog(t)
	outer := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	t1 := newBaseTable(t, cat, "t1", "t1")
	require.NoError(t, outer.AddTable(t1))

	inner := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), outer)
	require.NoError(t, inner.AddTable(newBaseTable(t, cat, "t2", "t2")))

	col := planbuilder.NewColExpr("", "t1", "a")
	bound, err := col.Bind(inner)
	require.NoError(t, err)
	require.True(t, bound.(*planbuilder.ColExpr).IsParameter)
	require.Len(t, t1.ColsRefBySubq(), 1)
}
