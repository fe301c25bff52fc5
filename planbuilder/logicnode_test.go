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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/caterby/qpmodel/planbuilder"
)

func outputNames(cols []*planbuilder.ColExpr) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.OutputName()
	}
	return names
}

func TestLogicJoinOutputColsConcatenatesBothSides(t *testing.T) {
	cat := testCatalog(t)
	t1 := newBaseTable(t, cat, "t1", "t1") // a, b
	t2 := newBaseTable(t, cat, "t2", "t2") // a, c

	join := &planbuilder.LogicJoin{
		Left:  &planbuilder.LogicScanTable{Ref: t1},
		Right: &planbuilder.LogicScanTable{Ref: t2},
		Op:    planbuilder.JoinInner,
	}

	got := outputNames(join.OutputCols())
	want := []string{"a", "b", "a", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LogicJoin.OutputCols() mismatch (-want +got):\n%s", diff)
	}
}

func TestLogicResultOutputColsNilChild(t *testing.T) {
	result := &planbuilder.LogicResult{Cols: []planbuilder.Expr{planbuilder.NewLiteral(1)}}
	require.Nil(t, result.OutputCols(), "a FROM-less SELECT has no child to source output columns from")
}

func TestLogicScanTableChildrenIsLeaf(t *testing.T) {
	cat := testCatalog(t)
	t1 := newBaseTable(t, cat, "t1", "t1")
	scan := &planbuilder.LogicScanTable{Ref: t1}
	require.Empty(t, scan.Children())
}
