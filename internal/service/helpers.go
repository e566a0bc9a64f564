package service

import (
	"errors"
	"strings"

	"loreforge/internal/apperr"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// normalizeList trims entries and drops blanks, preserving order. List columns
// always go through here before storage.
func normalizeList(in []string) datatypes.JSONSlice[string] {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return datatypes.NewJSONSlice(out)
}

// asNotFound maps gorm's record-not-found onto the error taxonomy, keeping
// everything else as an opaque internal error.
func asNotFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(msg)
	}
	return err
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
