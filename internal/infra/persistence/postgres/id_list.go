package postgres

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// idListSeparator joins UUID lists into a single text column.
const idListSeparator = "+"

// joinIDList serializes an ordered UUID list for storage.
func joinIDList(ids []uuid.UUID) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, id.String())
	}

	return strings.Join(parts, idListSeparator)
}

// splitIDList parses a stored UUID list, preserving order.
func splitIDList(joined string) ([]uuid.UUID, error) {
	if joined == "" {
		return nil, nil
	}

	parts := strings.Split(joined, idListSeparator)
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, errors.Wrapf(err, "malformed id list entry %q", part)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
