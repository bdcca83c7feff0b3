package utils

import (
	"deskwise-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateEntryID() string {
	return uuid.NewString()
}
