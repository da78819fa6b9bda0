// Package service holds the membership use cases. Services are plain structs
// wired by the app package; handlers map their sentinel errors to HTTP codes.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/barcommun/internal/membership/store"
)

// now is the clock used for soft deletes. Stored times are always UTC.
var now = func() time.Time { return time.Now().UTC() }

// mapNotFound swaps the store's not found sentinel for the service level one.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return err
}

func normaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
