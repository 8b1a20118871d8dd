package utils

import (
	"strings"
	"time"
)

// Tanggal di seluruh aplikasi memakai format India: dd/mm/yyyy.
const dateLayout = "02/01/2006"

// FormatDate formats a time as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses dd/mm/yyyy in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.Local)
}

// AddMonths adds n calendar months, normalizing overflow the way
// time.AddDate does (31 Jan + 1 month lands in early March).
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}
