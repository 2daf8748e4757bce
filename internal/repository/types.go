package repository

import "math"

// MaxOffset 偏移量上限，超大页码按该值查询，结果为空页
const MaxOffset = math.MaxInt32

// PostListFilter 查询帖子列表的过滤条件
type PostListFilter struct {
	Page         int
	PageSize     int
	ComunidadeID string
	UsuarioID    string
	Search       string
}

// ComunidadeListFilter 查询社区列表的过滤条件
type ComunidadeListFilter struct {
	Page     int
	PageSize int
}

// pageOffset 计算分页偏移量，非法页码按第一页处理，结果不超过 MaxOffset
func pageOffset(page, pageSize int) int {
	if page < 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > MaxOffset/pageSize {
		return MaxOffset
	}
	return (page - 1) * pageSize
}
