package dto

import (
	"fmt"
	"maps"
	"strings"
)

// Filter is a single named-parameter equality predicate.
type Filter struct {
	ArgName string
	Field   string
	Value   any
	Table   string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return fmt.Sprintf("%s.%s", f.Table, f.Field)
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	if f.Field == "" {
		return "", map[string]any{}
	}

	argName := f.argName()

	return fmt.Sprintf("%s = :%s", f.column(), argName), map[string]any{argName: f.Value}
}

// FilterGroup ANDs together Filters and nested FilterGroups.
type FilterGroup struct {
	Filters []any
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var where string
		var arg map[string]any

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)
		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " AND ")), args
}
