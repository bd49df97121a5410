package models

import "time"

// RoomDocument is the persisted form of the shared game room: a single
// row keyed by a fixed identifier, payload replaced wholesale on every
// write (last write wins, no merge).
type RoomDocument struct {
	ID        string    `gorm:"size:32;primaryKey" json:"id"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"payload"`
	HostID    string    `gorm:"size:64" json:"host_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
