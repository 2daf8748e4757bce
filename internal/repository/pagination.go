package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	return query.Limit(pageSize).Offset(pageOffset(page, pageSize))
}
