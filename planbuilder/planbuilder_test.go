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
)

const testFixture = `
t1:
  - {name: a, type: int}
  - {name: b, type: int}
t2:
  - {name: a, type: int}
  - {name: c, type: int}
`

func testCatalog(t *testing.T) *catalog.Fixture {
	t.Helper()
	cat, err := catalog.LoadFixture([]byte(testFixture))
	require.NoError(t, err)
	return cat
}
