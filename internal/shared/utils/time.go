package utils

import (
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

// FormatDate renders a time as a YYYY-MM-DD string for API responses.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatDatePtr renders an optional time, returning "" for nil.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(constants.DateFormat, s)
}

// MillisToTime converts a unix-millisecond timestamp to time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// MillisToTimePtr converts an optional unix-millisecond timestamp.
func MillisToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

// TimeToMillisPtr converts an optional time to unix milliseconds.
func TimeToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
