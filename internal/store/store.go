package store

import "github.com/neo-rakk/smala/internal/models"

// Store is the keyed document store the room lives in. Writes replace
// the whole document; there is no merge and no conflict detection, so
// concurrent writers resolve as last-write-wins. Subscribers receive
// every successful upsert (the new document) and delete (nil).
type Store interface {
	// Read returns the document, or (nil, nil) when the key is absent.
	Read(key string) (*models.RoomDocument, error)
	Upsert(doc *models.RoomDocument) error
	Delete(key string) error
	// Subscribe registers a change callback for the key and returns an
	// unsubscribe function.
	Subscribe(key string, fn func(*models.RoomDocument)) func()
}
