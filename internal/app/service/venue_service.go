package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/app/repository"
	"github.com/mgately/fyyur-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrVenueNotFound = errors.New("venue not found")

// VenueSummary is the listing/search shape for a single venue.
type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// CityGroup carries every venue sharing one (city, state) pair.
type CityGroup struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueSearchResults is the response shape for a venue name search.
type VenueSearchResults struct {
	Count int            `json:"count"`
	Data  []VenueSummary `json:"data"`
}

// ArtistShowInfo is one of a venue's shows with the artist resolved for display.
type ArtistShowInfo struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenuePage is the full detail-page view model for a venue.
type VenuePage struct {
	model.Venue
	PastShows          []ArtistShowInfo `json:"past_shows"`
	UpcomingShows      []ArtistShowInfo `json:"upcoming_shows"`
	PastShowsCount     int              `json:"past_shows_count"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
}

type VenueService interface {
	ListGroupedByCity() ([]CityGroup, error)
	Search(term string) (*VenueSearchResults, error)
	GetVenuePage(id uint) (*VenuePage, error)
	GetVenueByID(id uint) (*model.Venue, error)
	CreateVenue(venue *model.Venue) error
	UpdateVenue(venue *model.Venue) error
	DeleteVenue(id uint) error
}

type venueService struct {
	venueRepo repository.VenueRepository
	showRepo  repository.ShowRepository
	db        *gorm.DB
}

func NewVenueService(venueRepo repository.VenueRepository, showRepo repository.ShowRepository, db *gorm.DB) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		showRepo:  showRepo,
		db:        db,
	}
}

// ListGroupedByCity groups all venues by distinct (city, state) pairs. Every
// venue appears exactly once, in the group matching its pair.
func (s *venueService) ListGroupedByCity() ([]CityGroup, error) {
	pairs, err := s.venueRepo.ListCityStates()
	if err != nil {
		logger.Error("Failed to list venue areas", err)
		return nil, err
	}

	now := time.Now()
	groups := make([]CityGroup, 0, len(pairs))
	for _, pair := range pairs {
		venues, err := s.venueRepo.FindByCityState(pair.City, pair.State)
		if err != nil {
			return nil, err
		}

		summaries := make([]VenueSummary, 0, len(venues))
		for _, venue := range venues {
			upcoming, err := s.showRepo.CountUpcomingByVenueID(venue.ID, now)
			if err != nil {
				return nil, err
			}
			summaries = append(summaries, VenueSummary{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: int(upcoming),
			})
		}

		groups = append(groups, CityGroup{
			City:   pair.City,
			State:  pair.State,
			Venues: summaries,
		})
	}

	logger.Info("Venues grouped by city", map[string]interface{}{
		"group_count": len(groups),
	})
	return groups, nil
}

// Search matches venues whose name contains the term, case-insensitively.
func (s *venueService) Search(term string) (*VenueSearchResults, error) {
	venues, err := s.venueRepo.SearchByName(term)
	if err != nil {
		logger.Error("Venue search failed", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	now := time.Now()
	data := make([]VenueSummary, 0, len(venues))
	for _, venue := range venues {
		upcoming, err := s.showRepo.CountUpcomingByVenueID(venue.ID, now)
		if err != nil {
			return nil, err
		}
		data = append(data, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: int(upcoming),
		})
	}

	logger.Info("Venue search completed", map[string]interface{}{
		"term":  term,
		"count": len(data),
	})
	return &VenueSearchResults{Count: len(data), Data: data}, nil
}

// GetVenuePage builds the detail view: the venue plus its shows partitioned
// into past and upcoming by comparing start_time against now.
func (s *venueService) GetVenuePage(id uint) (*VenuePage, error) {
	venue, err := s.venueRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Venue not found", map[string]interface{}{
				"venue_id": id,
			})
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByVenueID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	page := &VenuePage{
		Venue:         *venue,
		PastShows:     []ArtistShowInfo{},
		UpcomingShows: []ArtistShowInfo{},
	}
	for _, show := range shows {
		info := ArtistShowInfo{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime.Format(model.StartTimeDisplayFormat),
		}
		if show.IsUpcoming(now) {
			page.UpcomingShows = append(page.UpcomingShows, info)
		} else {
			page.PastShows = append(page.PastShows, info)
		}
	}
	page.PastShowsCount = len(page.PastShows)
	page.UpcomingShowsCount = len(page.UpcomingShows)

	return page, nil
}

func (s *venueService) GetVenueByID(id uint) (*model.Venue, error) {
	venue, err := s.venueRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return venue, nil
}

func (s *venueService) CreateVenue(venue *model.Venue) error {
	venue.ApplyDefaults()

	logger.Info("Creating new venue", map[string]interface{}{
		"name":  venue.Name,
		"city":  venue.City,
		"state": venue.State,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during venue creation, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Create(venue).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create venue", err, map[string]interface{}{
			"name": venue.Name,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit venue creation", err, map[string]interface{}{
			"name": venue.Name,
		})
		return err
	}

	logger.Info("Venue created successfully", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return nil
}

// UpdateVenue overwrites every attribute of an existing venue with the
// submitted values.
func (s *venueService) UpdateVenue(venue *model.Venue) error {
	existing, err := s.venueRepo.FindByID(venue.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: venue not found", map[string]interface{}{
				"venue_id": venue.ID,
			})
			return ErrVenueNotFound
		}
		return err
	}

	venue.ApplyDefaults()

	existing.Name = venue.Name
	existing.City = venue.City
	existing.State = venue.State
	existing.Address = venue.Address
	existing.Phone = venue.Phone
	existing.ImageLink = venue.ImageLink
	existing.FacebookLink = venue.FacebookLink
	existing.Website = venue.Website
	existing.Genres = venue.Genres
	existing.SeekingTalent = venue.SeekingTalent
	existing.SeekingDescription = venue.SeekingDescription

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during venue update, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Save(existing).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to update venue", err, map[string]interface{}{
			"venue_id": venue.ID,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit venue update", err, map[string]interface{}{
			"venue_id": venue.ID,
		})
		return err
	}

	logger.Info("Venue updated successfully", map[string]interface{}{
		"venue_id": venue.ID,
		"name":     venue.Name,
	})
	return nil
}

// DeleteVenue removes the venue and every show referencing it within one
// transaction.
func (s *venueService) DeleteVenue(id uint) error {
	venue, err := s.venueRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: venue not found", map[string]interface{}{
				"venue_id": id,
			})
			return ErrVenueNotFound
		}
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during venue deletion, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Where("venue_id = ?", id).Delete(&model.Show{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete shows for venue", err, map[string]interface{}{
			"venue_id": id,
		})
		return err
	}

	if err := tx.Delete(venue).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete venue", err, map[string]interface{}{
			"venue_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit venue deletion", err, map[string]interface{}{
			"venue_id": id,
		})
		return err
	}

	logger.Info("Venue deleted successfully", map[string]interface{}{
		"venue_id": id,
		"name":     venue.Name,
	})
	return nil
}
