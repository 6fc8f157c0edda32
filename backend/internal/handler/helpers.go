package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// parseIdList parses a comma-separated id list from a query parameter.
// An empty parameter yields an empty list, which is a valid request.
func parseIdList(param string, paramName string) ([]int64, error) {
	if strings.TrimSpace(param) == "" {
		return []int64{}, nil
	}
	parts := strings.Split(param, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := parseIntParam(strings.TrimSpace(part), paramName)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
