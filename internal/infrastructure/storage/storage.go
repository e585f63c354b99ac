// internal/infrastructure/storage/storage.go
package storage

// Store is the key-value persistence collaborator. Values are JSON-encoded
// strings; a missing key is reported through the found flag, not an error.
type Store interface {
	// Load retrieves the value for key. found is false when the key is absent.
	Load(key string) (value string, found bool, err error)

	// Save stores value under key, overwriting any previous value.
	Save(key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
}
