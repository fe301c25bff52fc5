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

	"github.com/spf13/cast"

	"github.com/caterby/qpmodel/qerr"
)

// DDLKind enumerates the type names recognized in DDL (spec §6).
type DDLKind int

const (
	DDLInt DDLKind = iota
	DDLDouble
	DDLChar
	DDLVarchar
	DDLDatetime
	DDLDate
	DDLTime
	DDLNumeric
	DDLDecimal
)

// DDLType is a parsed column type: Kind plus whatever length/precision
// arguments it carries (n for char/varchar, p[,s] for numeric/decimal).
type DDLType struct {
	Kind      DDLKind
	Length    int
	Precision int
	Scale     int
}

// ParseDDLType recognizes the exact type-name set of spec §6:
// int/integer, double, double precision, char(n), varchar(n), datetime,
// date, time, numeric(p[,s]), decimal(p[,s]). name is the bare type
// keyword, matched case-insensitively after trimming surrounding
// space; args are whatever
// parenthesized numeric arguments followed it, as raw strings so this
// function owns the int conversion via cast.ToIntE (SPEC_FULL §3).
func ParseDDLType(name string, args ...string) (DDLType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "int", "integer":
		return DDLType{Kind: DDLInt}, nil
	case "double", "double precision":
		return DDLType{Kind: DDLDouble}, nil
	case "datetime":
		return DDLType{Kind: DDLDatetime}, nil
	case "date":
		return DDLType{Kind: DDLDate}, nil
	case "time":
		return DDLType{Kind: DDLTime}, nil
	case "char":
		n, err := ddlIntArg(args, 0, 1)
		if err != nil {
			return DDLType{}, err
		}
		return DDLType{Kind: DDLChar, Length: n}, nil
	case "varchar":
		n, err := ddlIntArg(args, 0, 255)
		if err != nil {
			return DDLType{}, err
		}
		return DDLType{Kind: DDLVarchar, Length: n}, nil
	case "numeric", "decimal":
		p, err := ddlIntArg(args, 0, 10)
		if err != nil {
			return DDLType{}, err
		}
		s, err := ddlIntArg(args, 1, 0)
		if err != nil {
			return DDLType{}, err
		}
		kind := DDLNumeric
		if name == "decimal" {
			kind = DDLDecimal
		}
		return DDLType{Kind: kind, Precision: p, Scale: s}, nil
	default:
		return DDLType{}, qerr.ErrUnknownType.New(name)
	}
}

func ddlIntArg(args []string, idx, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	return cast.ToIntE(args[idx])
}
