package util

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 12
	AdminPageSize   = 10
	MaxPageSize     = 100
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// ParseInt64Ptr returns nil for an empty or malformed value.
func ParseInt64Ptr(s string) *int64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func Calculate(page, size int) (offset int, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}

	offset = (page - 1) * size
	limit = size
	return offset, limit
}
