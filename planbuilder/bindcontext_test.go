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

	"github.com/caterby/qpmodel/planbuilder"
)

func TestAddTableRejectsDuplicateAlias(t *testing.T) {
	cat := testCatalog(t)
	ctx := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)

	require.NoError(t, ctx.AddTable(newBaseTable(t, cat, "t1", "x")))
	err := ctx.AddTable(newBaseTable(t, cat, "t2", "x"))
	require.Error(t, err, "a second table registered under an already-taken alias must be rejected")
}

func TestFindTableWalksAncestors(t *testing.T) {
	cat := testCatalog(t)
	outer := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), nil)
	require.NoError(t, outer.AddTable(newBaseTable(t, cat, "t1", "t1")))

	inner := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), outer)
	require.NoError(t, inner.AddTable(newBaseTable(t, cat, "t2", "t2")))

	found, scope := inner.FindTable("t1")
	require.NotNil(t, found)
	require.Same(t, outer, scope)

	_, scope = inner.FindTable("nonexistent")
	require.Nil(t, scope)
}

func TestFindCTEWalksParentStatementChain(t *testing.T) {
	cte := planbuilder.NewCTEQueryRef("c", nil, planbuilder.NewSelectStmt())

	outerStmt := planbuilder.NewSelectStmt()
	outerStmt.CTEFrom = []planbuilder.TableRef{cte}
	outer := planbuilder.NewBindContext(outerStmt, nil)

	inner := planbuilder.NewBindContext(planbuilder.NewSelectStmt(), outer)

	require.Same(t, cte, inner.FindCTE("c"))
	require.Nil(t, inner.FindCTE("missing"))
}
