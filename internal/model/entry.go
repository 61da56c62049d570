package model

import (
	"errors"
	"fmt"
	"strings"
)

// JustNow is the timestamp shown for entries touched in this session.
const JustNow = "just now"

var (
	ErrEmptyURL = errors.New("url must not be empty")
	ErrNotFound = errors.New("entry not found")
)

// Status is the processing state of an entry.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusPending   Status = "pending"
	StatusError     Status = "error"
)

// Label returns the display word for the status.
func (s Status) Label() string {
	switch s {
	case StatusProcessed:
		return "Processed"
	case StatusPending:
		return "Pending"
	case StatusError:
		return "Error"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusProcessed || s == StatusPending || s == StatusError
}

// ParseStatus parses a status name, case-insensitive.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return status, nil
}

// Entry is a URL record shown in the selector.
type Entry struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"` // display only, never parsed
}

// NormalizeURL trims the raw input and rejects empty values.
func NormalizeURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrEmptyURL
	}
	return url, nil
}
