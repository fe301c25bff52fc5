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

func TestNewCaseFromFlatSearchedNoElse(t *testing.T) {
	w1 := planbuilder.NewLiteral(true)
	t1 := planbuilder.NewLiteral(1)
	w2 := planbuilder.NewLiteral(false)
	t2 := planbuilder.NewLiteral(2)

	c, err := planbuilder.NewCaseFromFlat([]planbuilder.Expr{w1, t1, w2, t2}, false)
	require.NoError(t, err)
	require.Nil(t, c.Eval)
	require.Nil(t, c.Else)
	require.Len(t, c.Whens, 2)
	require.Len(t, c.Thens, 2)
}

func TestNewCaseFromFlatWithEvalAndElse(t *testing.T) {
	eval := planbuilder.NewColExpr("", "t1", "a")
	w1 := planbuilder.NewLiteral(1)
	t1 := planbuilder.NewLiteral("one")
	elseExpr := planbuilder.NewLiteral("other")

	c, err := planbuilder.NewCaseFromFlat([]planbuilder.Expr{eval, w1, t1, elseExpr}, true)
	require.NoError(t, err)
	require.NotNil(t, c.Eval)
	require.NotNil(t, c.Else)
	require.Len(t, c.Whens, 1)
	require.Len(t, c.Thens, 1)
}

func TestNewCaseFromFlatMalformed(t *testing.T) {
	// A single WHEN with no matching THEN: the odd-length list's lone
	// entry is taken as the eval expression, leaving no WHEN/THEN pair.
	w1 := planbuilder.NewLiteral(true)
	_, err := planbuilder.NewCaseFromFlat([]planbuilder.Expr{w1}, false)
	require.Error(t, err)
}

func TestNewCaseFromFlatElsePresentButEmpty(t *testing.T) {
	_, err := planbuilder.NewCaseFromFlat(nil, true)
	require.Error(t, err)
}

func TestCaseExprCloneIsIndependent(t *testing.T) {
	w1 := planbuilder.NewLiteral(1)
	t1 := planbuilder.NewLiteral("a")
	c, err := planbuilder.NewCaseFromFlat([]planbuilder.Expr{w1, t1}, false)
	require.NoError(t, err)

	cloned := c.Clone().(*planbuilder.CaseExpr)
	cloned.Whens[0] = planbuilder.NewLiteral(99)

	require.NotEqual(t, c.Whens[0].String(), cloned.Whens[0].String())
}
