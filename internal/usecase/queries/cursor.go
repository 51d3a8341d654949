package queries

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

// EncodeAfterCursor builds an opaque keyset cursor from the last row's check-in date and id.
func EncodeAfterCursor(checkIn time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s:%s", CursorVersionV1, checkIn.Format(time.DateOnly), id.String())
	return base64.RawURLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	version, payload, ok := strings.Cut(string(decoded), ":")
	if !ok || version != CursorVersionV1 {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	datePart, idPart, ok := strings.Cut(payload, ":")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<date>:<uuid>'")
	}

	checkIn, err := time.Parse(time.DateOnly, datePart)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid date: %w", err)
	}

	id, err := uuid.Parse(idPart)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return checkIn, id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
