package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	MaxListLimit    = 200
	CursorVersionV1 = "v1"
)

// Completed quote ids are ULIDs, so the id alone orders the keyset.
func EncodeAfterCursor(id ulid.ULID) string {
	cursorData := fmt.Sprintf("%s:%s", CursorVersionV1, id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

// Accepts a bare ULID as well as the encoded form
func DecodeAfterCursor(cursor string) (ulid.ULID, error) {
	if cursor == "" {
		return ulid.ULID{}, fmt.Errorf("cursor cannot be empty")
	}

	if decoded, err := base64.URLEncoding.DecodeString(cursor); err == nil {
		decodedStr := string(decoded)
		if strings.HasPrefix(decodedStr, CursorVersionV1+":") {
			return parseULID(strings.TrimPrefix(decodedStr, CursorVersionV1+":"))
		}
	}

	return parseULID(cursor)
}

func parseULID(s string) (ulid.ULID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("invalid ULID: %w", err)
	}
	return id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 20 // default limit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
