package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatAED formats an integer amount in fils as a string like "AED 11.50".
func FormatAED(fils int64) string {
	neg := fils < 0
	if neg {
		fils = -fils
	}
	s := fmt.Sprintf("AED %d.%02d", fils/100, fils%100)
	if neg {
		return "-" + s
	}
	return s
}

// ParseAED parses an amount like "AED 11.50" or "11.5" back into fils.
// Used when reading order rows back out of the spreadsheet.
func ParseAED(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimSpace(strings.TrimPrefix(s, "AED"))

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	var f int64
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		parsed, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		f = parsed
		if len(frac) == 1 {
			f *= 10
		}
	}

	fils := w*100 + f
	if neg {
		fils = -fils
	}
	return fils, nil
}
