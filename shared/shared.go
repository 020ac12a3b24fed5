package shared

import (
	"strconv"
	"strings"
	"todolist/shared/dto"
)

const cacheKeySeparator = ":"

// ParseID parses an integer row id taken from a URL segment. Ids that name no row,
// zero and negatives included, are left for the store to report as missing.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// BuildCacheKey joins non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field: fieldID,
				Value: id,
				Table: table,
			},
		},
	}
}
