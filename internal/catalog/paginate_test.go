package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		skip     int
		pageSize int
		want     []int
	}{
		{name: "first page", skip: 0, pageSize: 3, want: []int{1, 2, 3}},
		{name: "middle page", skip: 3, pageSize: 3, want: []int{4, 5, 6}},
		{name: "clipped last page", skip: 6, pageSize: 3, want: []int{7}},
		{name: "skip at length", skip: 7, pageSize: 3, want: []int{}},
		{name: "skip past length", skip: 40, pageSize: 3, want: []int{}},
		{name: "negative skip", skip: -2, pageSize: 2, want: []int{1, 2}},
		{name: "zero page size", skip: 0, pageSize: 0, want: []int{}},
		{name: "page larger than set", skip: 0, pageSize: 100, want: items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Slice(items, tt.skip, tt.pageSize))
		})
	}
}

func TestSlice_DoesNotAlias(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	out := Slice(items, 0, 2)
	out[0] = 99

	assert.Equal(t, 1, items[0])
}

func TestSlice_NilInput(t *testing.T) {
	t.Parallel()

	got := Slice[string](nil, 0, 10)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
