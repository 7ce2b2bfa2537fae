package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatUGX renders an integer shilling amount with thousand separators,
// e.g. 45000 -> "UGX 45,000".
func FormatUGX(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%sUGX %s", sign, formatThousand(amount))
}

// ParseUGX parses "UGX 45,000" or "45000" into an integer shilling amount.
func ParseUGX(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.ToUpper(s), "UGX")
	s = strings.TrimSpace(s)
	replacer := strings.NewReplacer(",", "", ".", "", " ", "")
	s = replacer.Replace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid amount")
	}
	return strconv.ParseInt(s, 10, 64)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
