package store

import (
	"errors"
	"time"

	"github.com/neo-rakk/smala/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps room documents in PostgreSQL, one row per key.
type GormStore struct {
	db   *gorm.DB
	subs *subscribers
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, subs: newSubscribers()}
}

func (s *GormStore) Read(key string) (*models.RoomDocument, error) {
	var doc models.RoomDocument
	if err := s.db.First(&doc, "id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logrus.WithError(err).WithField("key", key).Warn("store: read failed")
		return nil, err
	}
	return &doc, nil
}

func (s *GormStore) Upsert(doc *models.RoomDocument) error {
	doc.UpdatedAt = time.Now()
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "host_id", "updated_at"}),
	}).Create(doc).Error
	if err != nil {
		logrus.WithError(err).WithField("key", doc.ID).Warn("store: upsert failed")
		return err
	}
	s.subs.notify(doc.ID, doc)
	return nil
}

func (s *GormStore) Delete(key string) error {
	if err := s.db.Delete(&models.RoomDocument{}, "id = ?", key).Error; err != nil {
		logrus.WithError(err).WithField("key", key).Warn("store: delete failed")
		return err
	}
	s.subs.notify(key, nil)
	return nil
}

func (s *GormStore) Subscribe(key string, fn func(*models.RoomDocument)) func() {
	return s.subs.add(key, fn)
}
