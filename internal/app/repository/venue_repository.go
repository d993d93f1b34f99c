package repository

import (
	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/pkg/logger"
	"gorm.io/gorm"
)

// CityState is one distinct (city, state) pair present in the venues table.
type CityState struct {
	City  string
	State string
}

type VenueRepository interface {
	FindAll() ([]model.Venue, error)
	FindByID(id uint) (*model.Venue, error)
	FindByCityState(city, state string) ([]model.Venue, error)
	SearchByName(term string) ([]model.Venue, error)
	ListCityStates() ([]CityState, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) FindAll() ([]model.Venue, error) {
	var venues []model.Venue
	if err := r.db.Find(&venues).Error; err != nil {
		logger.Error("Failed to find venues", err)
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindByID(id uint) (*model.Venue, error) {
	logger.Debug("Finding venue by ID", map[string]interface{}{
		"venue_id": id,
	})

	var venue model.Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		logger.Error("Failed to find venue", err, map[string]interface{}{
			"venue_id": id,
		})
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByCityState(city, state string) ([]model.Venue, error) {
	var venues []model.Venue
	if err := r.db.
		Where("city = ? AND state = ?", city, state).
		Find(&venues).Error; err != nil {
		logger.Error("Failed to find venues by city/state", err, map[string]interface{}{
			"city":  city,
			"state": state,
		})
		return nil, err
	}
	return venues, nil
}

// SearchByName matches the term as a case-insensitive substring of the venue
// name. An empty term matches every row.
func (r *venueRepository) SearchByName(term string) ([]model.Venue, error) {
	logger.Debug("Searching venues by name", map[string]interface{}{
		"term": term,
	})

	var venues []model.Venue
	like := "%" + term + "%"
	if err := r.db.
		Where("lower(name) LIKE lower(?)", like).
		Find(&venues).Error; err != nil {
		logger.Error("Failed to search venues", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	logger.Debug("Venues matched", map[string]interface{}{
		"term":  term,
		"count": len(venues),
	})
	return venues, nil
}

func (r *venueRepository) ListCityStates() ([]CityState, error) {
	logger.Debug("Listing distinct venue city/state pairs")

	var pairs []CityState
	if err := r.db.Model(&model.Venue{}).
		Select("city, state").
		Distinct().
		Scan(&pairs).Error; err != nil {
		logger.Error("Failed to list venue city/state pairs", err)
		return nil, err
	}
	return pairs, nil
}
