package repository

import (
	"time"

	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/pkg/logger"
	"gorm.io/gorm"
)

type ShowRepository interface {
	FindAll() ([]model.Show, error)
	FindByVenueID(venueID uint) ([]model.Show, error)
	FindByArtistID(artistID uint) ([]model.Show, error)
	FindByVenueIDs(venueIDs []uint) ([]model.Show, error)
	CountUpcomingByVenueID(venueID uint, now time.Time) (int64, error)
	CountUpcomingByArtistID(artistID uint, now time.Time) (int64, error)
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

// FindAll returns every show with its artist and venue loaded for display.
func (r *showRepository) FindAll() ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.
		Preload("Artist").
		Preload("Venue").
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows", err)
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueID(venueID uint) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.
		Preload("Artist").
		Where("venue_id = ?", venueID).
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows for venue", err, map[string]interface{}{
			"venue_id": venueID,
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByArtistID(artistID uint) ([]model.Show, error) {
	var shows []model.Show
	if err := r.db.
		Preload("Venue").
		Where("artist_id = ?", artistID).
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows for artist", err, map[string]interface{}{
			"artist_id": artistID,
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) FindByVenueIDs(venueIDs []uint) ([]model.Show, error) {
	if len(venueIDs) == 0 {
		return []model.Show{}, nil
	}

	var shows []model.Show
	if err := r.db.
		Preload("Artist").
		Preload("Venue").
		Where("venue_id IN ?", venueIDs).
		Find(&shows).Error; err != nil {
		logger.Error("Failed to find shows for venues", err, map[string]interface{}{
			"venue_count": len(venueIDs),
		})
		return nil, err
	}
	return shows, nil
}

func (r *showRepository) CountUpcomingByVenueID(venueID uint, now time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, now).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count upcoming shows for venue", err, map[string]interface{}{
			"venue_id": venueID,
		})
		return 0, err
	}
	return count, nil
}

func (r *showRepository) CountUpcomingByArtistID(artistID uint, now time.Time) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Show{}).
		Where("artist_id = ? AND start_time > ?", artistID, now).
		Count(&count).Error; err != nil {
		logger.Error("Failed to count upcoming shows for artist", err, map[string]interface{}{
			"artist_id": artistID,
		})
		return 0, err
	}
	return count, nil
}
