// Package util provides id generation shared by the sale engine and inventory.
package util

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID returns a random RFC4122 v4 UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}

// TransactionID returns a receipt id of the form TX-XXXXXXXX.
func TransactionID() string {
	id := uuid.New()
	return "TX-" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}
