// Package pagination normalizes page-size and page-token inputs for list RPCs.
package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ParseIntToken decodes a numeric page token. An empty token means
// "start from the beginning" and decodes to zero.
func ParseIntToken(token string) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid page token: %q", token)
	}
	return value, nil
}

// FormatIntToken encodes a numeric page token.
func FormatIntToken(value int64) string {
	return strconv.FormatInt(value, 10)
}
