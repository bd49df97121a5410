package services

import (
	"errors"

	"github.com/neo-rakk/smala/internal/models"

	"gorm.io/gorm"
)

type LeaderboardService struct {
	db *gorm.DB
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

func (s *LeaderboardService) Append(teamName string, score int) (*models.LeaderboardEntry, error) {
	entry := models.LeaderboardEntry{
		TeamName: teamName,
		Score:    score,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *LeaderboardService) List() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := s.db.Order("score DESC, created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *LeaderboardService) Delete(id uint) error {
	res := s.db.Delete(&models.LeaderboardEntry{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("entry not found")
	}
	return nil
}
