package service

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage 页码小于 1 时按第一页处理
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPageSize 将每页数量限制在 [1, max] 区间
func ClampPageSize(pageSize, max int) int {
	if max <= 0 || max > MaxPageSize {
		max = MaxPageSize
	}
	if pageSize < 1 {
		return 1
	}
	if pageSize > max {
		return max
	}
	return pageSize
}
