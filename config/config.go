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

// Package config holds planner-wide options that are ambient to the
// core algorithm (spec §1 treats the core as a pure function of
// statement + catalog; these knobs only affect how liberally it binds).
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// PlannerOptions are feature flags read once per process and stored on
// PlanContext.Options. Bind and CreatePlan do not read them: identifier
// matching is always case-insensitive and join arity is never capped,
// whatever these fields hold.
type PlannerOptions struct {
	// CaseSensitiveIdentifiers names case-sensitive alias/column
	// matching; ColExpr.Bind and TableRef.LocateColumn do not consult it.
	CaseSensitiveIdentifiers bool `toml:"case_sensitive_identifiers"`
	// MaxJoinArity names a cap on the number of tables folded into a
	// single left-deep join chain (spec §4.5), 0 meaning unlimited;
	// CreatePlan does not consult it.
	MaxJoinArity int `toml:"max_join_arity"`
}

// Default returns the zero-value options: case-insensitive identifiers,
// unbounded join arity.
func Default() PlannerOptions {
	return PlannerOptions{}
}

// Load reads planner options from a TOML file at path. A missing file
// is not an error; Default() is returned instead.
func Load(path string) (PlannerOptions, error) {
	opts := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return opts, nil
	}
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
