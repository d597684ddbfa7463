package types

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Alphabet used for document ID generation (alphanumeric)
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateDocumentID generates a unique 12-character random ID for scratch
// (untitled) documents. IDs are opaque and stable for the document's lifetime.
func GenerateDocumentID() string {
	const length = 12
	const alphabetLen = 62 // len(alphabet)

	result := make([]byte, length)
	for i := range result {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(alphabetLen)))
		result[i] = alphabet[n.Int64()]
	}

	return string(result)
}

// DocumentIDForPath derives a deterministic 20-character ID from a source file
// path, so reopening the same file lands on the same document.
func DocumentIDForPath(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:])[:20]
}
