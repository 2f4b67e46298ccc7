package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/kwabenaosei/shopdesk-backend/pkg/errors"
)

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParseQueryIntList parses a comma-separated list of integers, e.g.
// exclude=1,2,5. Blank entries are skipped.
func ParseQueryIntList(r *http.Request, key string) ([]int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a list of integers").WithDetails(map[string]any{"field": key, "value": part})
		}
		values = append(values, value)
	}
	return values, nil
}
