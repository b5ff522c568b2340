package shared

import "math"

// Pagination wraps one page of items together with the totals a client needs
// to render pagers. When the caller opted out of pagination, PageSize equals
// TotalCount and Items holds every row.
type Pagination[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageIndex  int `json:"pageIndex"`
	PageSize   int `json:"pageSize"`
	TotalPage  int `json:"totalPage"`
}

// TotalPages computes ceil(totalCount/pageSize).
func TotalPages(totalCount, pageSize int) int {
	return int(math.Ceil(float64(totalCount) / float64(pageSize)))
}
