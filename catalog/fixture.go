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

package catalog

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/caterby/qpmodel/qerr"
)

// Fixture is an in-memory Catalog loaded from a YAML document, used by
// tests and the cmd/qpplan worked example so the binder can be
// exercised without a live database:
//
//	customer:
//	  - {name: c_custkey, type: int}
//	  - {name: c_name, type: "varchar(25)"}
type Fixture struct {
	tables map[string]*TableDef
}

type fixtureCol struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// LoadFixture parses a YAML table/column document into a Fixture
// catalog.
func LoadFixture(data []byte) (*Fixture, error) {
	var raw map[string][]fixtureCol
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "unable to parse catalog fixture")
	}
	f := &Fixture{tables: make(map[string]*TableDef, len(raw))}
	for name, cols := range raw {
		def := &TableDef{Name: name}
		for _, c := range cols {
			def.Cols = append(def.Cols, ColumnDef{Name: c.Name, Type: c.Type})
		}
		f.tables[name] = def
	}
	return f, nil
}

func (f *Fixture) TryTable(name string) *TableDef {
	return f.tables[name]
}

func (f *Fixture) Table(name string) (*TableDef, error) {
	t := f.TryTable(name)
	if t == nil {
		return nil, qerr.ErrTableNotExists.New(name)
	}
	return t, nil
}

func (f *Fixture) TableCols(name string) []ColumnDef {
	t := f.TryTable(name)
	if t == nil {
		return nil
	}
	return t.Cols
}
