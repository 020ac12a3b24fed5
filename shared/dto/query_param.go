package dto

import (
	"strings"
	"todolist/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering for list queries. Listings are never paginated.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// DefaultQueryParams orders rows by id ascending, i.e. insertion order.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}
}

// OrderClause renders the ORDER BY clause, or an empty string when ordering is incomplete.
func (q QueryParams) OrderClause() string {
	dir := strings.ToUpper(q.SortDir)
	if q.SortBy == "" || (dir != SortDirAsc && dir != SortDirDesc) {
		return ""
	}

	return "ORDER BY " + q.SortBy + " " + dir
}
