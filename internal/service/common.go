package service

import (
	apperrors "impactohub-backend/internal/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// normalizePagination turns 1-based page parameters into limit/offset,
// applying defaults and caps
func normalizePagination(page, pageSize int) (limit, offset int, err error) {
	if page < 0 || pageSize < 0 {
		return 0, 0, apperrors.ErrInvalidPaginationParams
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return pageSize, (page - 1) * pageSize, nil
}
