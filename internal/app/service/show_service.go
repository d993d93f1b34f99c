package service

import (
	"errors"
	"fmt"

	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/app/repository"
	"github.com/mgately/fyyur-backend/pkg/logger"
	"gorm.io/gorm"
)

// ShowListing is one show with both parents resolved for display.
type ShowListing struct {
	ShowID          uint   `json:"show_id"`
	StartTime       string `json:"start_time"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
}

// ShowSearchResults holds shows belonging to venues whose name matched a
// search term.
type ShowSearchResults struct {
	Count int           `json:"count"`
	Data  []ShowListing `json:"data"`
}

type ShowService interface {
	ListShows() ([]ShowListing, error)
	SearchByVenueName(term string) (*ShowSearchResults, error)
	CreateShow(show *model.Show) error
}

type showService struct {
	showRepo   repository.ShowRepository
	artistRepo repository.ArtistRepository
	venueRepo  repository.VenueRepository
	db         *gorm.DB
}

func NewShowService(
	showRepo repository.ShowRepository,
	artistRepo repository.ArtistRepository,
	venueRepo repository.VenueRepository,
	db *gorm.DB,
) ShowService {
	return &showService{
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		db:         db,
	}
}

func listingFromShow(show model.Show) ShowListing {
	return ShowListing{
		ShowID:          show.ID,
		StartTime:       show.StartTime.Format(model.StartTimeDisplayFormat),
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
	}
}

// ListShows returns every show enriched with artist and venue display fields.
func (s *showService) ListShows() ([]ShowListing, error) {
	shows, err := s.showRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list shows", err)
		return nil, err
	}

	listings := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		listings = append(listings, listingFromShow(show))
	}

	logger.Info("Shows listed", map[string]interface{}{
		"count": len(listings),
	})
	return listings, nil
}

// SearchByVenueName returns all shows belonging to venues whose name contains
// the term, case-insensitively.
func (s *showService) SearchByVenueName(term string) (*ShowSearchResults, error) {
	venues, err := s.venueRepo.SearchByName(term)
	if err != nil {
		logger.Error("Show search failed while matching venues", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	venueIDs := make([]uint, 0, len(venues))
	for _, venue := range venues {
		venueIDs = append(venueIDs, venue.ID)
	}

	shows, err := s.showRepo.FindByVenueIDs(venueIDs)
	if err != nil {
		logger.Error("Show search failed while loading shows", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	data := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		data = append(data, listingFromShow(show))
	}

	logger.Info("Show search completed", map[string]interface{}{
		"term":          term,
		"venue_matches": len(venueIDs),
		"count":         len(data),
	})
	return &ShowSearchResults{Count: len(data), Data: data}, nil
}

// CreateShow persists a new show after checking that both referenced parents
// exist.
func (s *showService) CreateShow(show *model.Show) error {
	logger.Info("Creating new show", map[string]interface{}{
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime,
	})

	if _, err := s.artistRepo.FindByID(show.ArtistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot create show: artist not found", map[string]interface{}{
				"artist_id": show.ArtistID,
			})
			return ErrArtistNotFound
		}
		return err
	}

	if _, err := s.venueRepo.FindByID(show.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot create show: venue not found", map[string]interface{}{
				"venue_id": show.VenueID,
			})
			return ErrVenueNotFound
		}
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during show creation, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Create(show).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create show", err, map[string]interface{}{
			"artist_id": show.ArtistID,
			"venue_id":  show.VenueID,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit show creation", err, map[string]interface{}{
			"artist_id": show.ArtistID,
			"venue_id":  show.VenueID,
		})
		return err
	}

	logger.Info("Show created successfully", map[string]interface{}{
		"show_id": show.ID,
	})
	return nil
}
