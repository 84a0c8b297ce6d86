// Copyright 2025 the anonydoc authors
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

package replacer_test

import (
	"testing"

	"github.com/anonydoc/anonydoc/pkg/replacer"
	"github.com/stretchr/testify/assert"
)

func TestSpliceAll_AppliesHighestStartFirst(t *testing.T) {
	// Ascending input order must not matter: replacements of different
	// lengths would corrupt later offsets if applied left-to-right.
	out := replacer.SpliceAll("abcdef", []replacer.Splice{
		{Start: 0, End: 2, Replacement: "LONGER"},
		{Start: 4, End: 6, Replacement: "Y"},
	})
	assert.Equal(t, "LONGERcdY", out)
}

func TestSpliceAll_Empty(t *testing.T) {
	assert.Equal(t, "unchanged", replacer.SpliceAll("unchanged", nil))
}

func TestOverlaps(t *testing.T) {
	spans := []replacer.Splice{{Start: 0, End: 3}, {Start: 10, End: 14}}

	assert.True(t, replacer.Overlaps(2, 4, spans))
	assert.True(t, replacer.Overlaps(9, 11, spans))
	// Adjacent half-open ranges do not intersect.
	assert.False(t, replacer.Overlaps(3, 10, spans))
	assert.False(t, replacer.Overlaps(14, 20, spans))
}
