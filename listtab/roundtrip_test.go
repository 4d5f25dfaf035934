// Copyright 2025 ModCheck Contributors
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

package listtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modcheck/mods"
)

// The sizes the mods package renders must sort numerically in the tabs.
func TestFormatSizeParsesAsSize(t *testing.T) {
	tests := []struct {
		bytes int64
		delta float64
	}{
		{500, 0},
		{1024, 0},
		{665702, 52},    // "650.1 Kb" rounds to one decimal
		{2097152, 1 << 19},
		{3221225472, 1 << 29},
	}
	for _, tt := range tests {
		got, ok := sizeToBytes(mods.FormatSize(tt.bytes))
		require.True(t, ok, "FormatSize(%d)", tt.bytes)
		assert.InDelta(t, float64(tt.bytes), got, tt.delta+1)
	}
}
