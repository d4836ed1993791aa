package filter

import "github.com/Skotchmaster/vape_shop/internal/util"

type Meta struct {
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

type Page[T any] struct {
	Items []T
	Meta  Meta
}

func Paginate[T any](items []T, page, size int) Page[T] {
	offset, limit := util.Calculate(page, size)
	page = offset/limit + 1
	total := int64(len(items))

	start := min(offset, len(items))
	end := min(offset+limit, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items: out,
		Meta: Meta{
			Page:       page,
			Size:       limit,
			Total:      total,
			TotalPages: (total + int64(limit) - 1) / int64(limit),
			HasPrev:    page > 1,
			HasNext:    int64(offset+limit) < total,
		},
	}
}
