package controllers

import (
	"fmt"
	"strings"
	"time"

	"rms-backend/utils"
)

// helpers for loose import rows: upstream exports rename columns freely,
// so every accessor accepts a list of candidate keys.

func getStringFromMap(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s, ok2 := v.(string); ok2 {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return ""
}

func getNumberFromMap(m map[string]interface{}, fallback float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return utils.ParseNumber(v, fallback)
		}
	}
	return fallback
}

func getDateFromMap(m map[string]interface{}, keys ...string) *time.Time {
	raw := getStringFromMap(m, keys...)
	if raw == "" {
		return nil
	}
	return utils.ParseDate(raw)
}
