package item

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a new opaque item identifier.
func NewID() string {
	return uuid.NewString()
}

// IDIndex indexes item IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from one or more item slices.
func NewIDIndex(collections ...[]Item) IDIndex {
	var ids []string
	seen := make(map[string]bool)
	for _, items := range collections {
		for _, it := range items {
			id := strings.ToLower(it.ID)
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return IDIndex{ids: ids}
}

// Resolve returns the full item ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", ErrItemNotFound
	}

	var match string
	for _, id := range index.ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
			}
			match = id
		}
	}

	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrItemNotFound, prefix)
	}
	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	lengths := make(map[string]int, len(index.ids))
	for _, id := range index.ids {
		lengths[id] = uniquePrefixLength(id, index.ids)
	}
	return lengths
}

func uniquePrefixLength(id string, ids []string) int {
	for length := 1; length <= len(id); length++ {
		prefix := id[:length]
		unique := true
		for _, other := range ids {
			if other == id {
				continue
			}
			if strings.HasPrefix(other, prefix) {
				unique = false
				break
			}
		}
		if unique {
			return length
		}
	}
	return len(id)
}
