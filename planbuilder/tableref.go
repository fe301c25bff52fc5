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

import (
	"strings"

	"github.com/caterby/qpmodel/qerr"
)

// TableRef is a FROM-clause source: a base relation, an external file
// binding, a nested query, a CTE reference, or an n-ary join (spec §3).
type TableRef interface {
	// Alias is the first name under which this ref is referable.
	Alias() string

	// AllColumnRefs returns the columns this ref exposes to the
	// enclosing scope (spec §4.2).
	AllColumnRefs() []*ColExpr

	// LocateColumn scans AllColumnRefs for the unique match by
	// OutputName; returns ErrAmbiguousColumnName on multiple matches,
	// nil (no error) with a nil column on zero matches.
	LocateColumn(name string) (*ColExpr, error)

	// AddOuterRefsToOutput appends, to output, a non-visible clone of
	// every entry in ColsRefBySubq not already present (spec §4.2).
	AddOuterRefsToOutput(output []*ColExpr) []*ColExpr

	// ColsRefBySubq is the set of ColExprs resolved through this ref
	// from a strictly deeper scope (spec invariant I3/I4).
	ColsRefBySubq() []*ColExpr
	addColRefBySubq(c *ColExpr)

	// bind binds whatever this ref owns directly: inner SELECTs for
	// QueryRefs, join constraints for JoinQueryRef. Base/External have
	// nothing of their own to bind.
	bind(ctx *BindContext) error
}

func hasColumn(t TableRef, name string) bool {
	col, err := t.LocateColumn(name)
	return err == nil && col != nil
}

func appendColRefBySubq(existing []*ColExpr, c *ColExpr) []*ColExpr {
	for _, e := range existing {
		if e == c {
			return existing
		}
	}
	return append(existing, c)
}

// locateColumnByName is the shared linear-scan implementation of
// LocateColumn used by every TableRef variant: ambiguity is determined
// purely by OutputName, never by table qualifier (spec §9, "known
// limitation").
func locateColumnByName(cols []*ColExpr, name string) (*ColExpr, error) {
	var found *ColExpr
	for _, c := range cols {
		if strings.EqualFold(c.OutputName(), name) {
			if found != nil {
				return nil, qerr.ErrAmbiguousColumnName.New(name)
			}
			found = c
		}
	}
	return found, nil
}

func addOuterRefsToOutput(colsRefBySubq, output []*ColExpr) []*ColExpr {
	for _, x := range colsRefBySubq {
		present := false
		for _, o := range output {
			if o == x {
				present = true
				break
			}
		}
		if present {
			continue
		}
		clone := x.Clone().(*ColExpr)
		clone.IsVisible = false
		clone.IsParameter = false
		output = append(output, clone)
	}
	return output
}
