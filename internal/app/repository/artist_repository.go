package repository

import (
	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/pkg/logger"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	FindAll() ([]model.Artist, error)
	FindByID(id uint) (*model.Artist, error)
	SearchByName(term string) ([]model.Artist, error)
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) FindAll() ([]model.Artist, error) {
	var artists []model.Artist
	if err := r.db.Find(&artists).Error; err != nil {
		logger.Error("Failed to find artists", err)
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) FindByID(id uint) (*model.Artist, error) {
	logger.Debug("Finding artist by ID", map[string]interface{}{
		"artist_id": id,
	})

	var artist model.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		logger.Error("Failed to find artist", err, map[string]interface{}{
			"artist_id": id,
		})
		return nil, err
	}
	return &artist, nil
}

// SearchByName matches the term as a case-insensitive substring of the artist
// name. An empty term matches every row.
func (r *artistRepository) SearchByName(term string) ([]model.Artist, error) {
	logger.Debug("Searching artists by name", map[string]interface{}{
		"term": term,
	})

	var artists []model.Artist
	like := "%" + term + "%"
	if err := r.db.
		Where("lower(name) LIKE lower(?)", like).
		Find(&artists).Error; err != nil {
		logger.Error("Failed to search artists", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	logger.Debug("Artists matched", map[string]interface{}{
		"term":  term,
		"count": len(artists),
	})
	return artists, nil
}
