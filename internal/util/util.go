package util

import (
	"github.com/google/uuid"
)

// RandomCallerID generates a random caller identity, used when no identity is supplied
func RandomCallerID() string {
	return "caller-" + uuid.New().String()
}
