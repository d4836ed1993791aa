package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, ParseIntDefault("", 5))
	assert.Equal(t, 5, ParseIntDefault("abc", 5))
	assert.Equal(t, 42, ParseIntDefault("42", 5))
	assert.Equal(t, -1, ParseIntDefault("-1", 5))
}

func TestParseInt64Ptr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseInt64Ptr(""))
	assert.Nil(t, ParseInt64Ptr("1.5"))

	v := ParseInt64Ptr("5000")
	require.NotNil(t, v)
	assert.Equal(t, int64(5000), *v)
}

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page, size int
		offset     int
		limit      int
	}{
		{name: "first page", page: 1, size: 10, offset: 0, limit: 10},
		{name: "third page", page: 3, size: 10, offset: 20, limit: 10},
		{name: "page below one", page: 0, size: 10, offset: 0, limit: 10},
		{name: "zero size", page: 2, size: 0, offset: DefaultPageSize, limit: DefaultPageSize},
		{name: "size too large", page: 1, size: 1000, offset: 0, limit: DefaultPageSize},
		{name: "huge page", page: math.MaxInt, size: 12, offset: (math.MaxInt/12 - 1) * 12, limit: 12},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.limit, limit)
		})
	}
}
