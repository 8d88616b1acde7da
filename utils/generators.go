package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// GenerateID generates a unique ID for entities
func GenerateID() string {
	return uuid.New().String()
}

// GenerateReceiptNumber generates a short human-facing receipt number
func GenerateReceiptNumber() string {
	result := make([]byte, ReceiptLength)
	for i := range result {
		result[i] = ReceiptCharset[rand.Intn(len(ReceiptCharset))]
	}
	return string(result)
}
