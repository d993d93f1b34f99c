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

var ErrArtistNotFound = errors.New("artist not found")

// ArtistSummary is the search-result shape for a single artist.
type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// ArtistSearchResults is the response shape for an artist name search.
type ArtistSearchResults struct {
	Count int             `json:"count"`
	Data  []ArtistSummary `json:"data"`
}

// VenueShowInfo is one of an artist's shows with the venue resolved for display.
type VenueShowInfo struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistPage is the full detail-page view model for an artist.
type ArtistPage struct {
	model.Artist
	PastShows          []VenueShowInfo `json:"past_shows"`
	UpcomingShows      []VenueShowInfo `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

type ArtistService interface {
	ListArtists() ([]model.Artist, error)
	Search(term string) (*ArtistSearchResults, error)
	GetArtistPage(id uint) (*ArtistPage, error)
	GetArtistByID(id uint) (*model.Artist, error)
	CreateArtist(artist *model.Artist) error
	UpdateArtist(artist *model.Artist) error
	DeleteArtist(id uint) error
}

type artistService struct {
	artistRepo repository.ArtistRepository
	showRepo   repository.ShowRepository
	db         *gorm.DB
}

func NewArtistService(artistRepo repository.ArtistRepository, showRepo repository.ShowRepository, db *gorm.DB) ArtistService {
	return &artistService{
		artistRepo: artistRepo,
		showRepo:   showRepo,
		db:         db,
	}
}

func (s *artistService) ListArtists() ([]model.Artist, error) {
	artists, err := s.artistRepo.FindAll()
	if err != nil {
		logger.Error("Failed to list artists", err)
		return nil, err
	}

	logger.Info("Artists listed", map[string]interface{}{
		"count": len(artists),
	})
	return artists, nil
}

// Search matches artists whose name contains the term, case-insensitively.
func (s *artistService) Search(term string) (*ArtistSearchResults, error) {
	artists, err := s.artistRepo.SearchByName(term)
	if err != nil {
		logger.Error("Artist search failed", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	now := time.Now()
	data := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		upcoming, err := s.showRepo.CountUpcomingByArtistID(artist.ID, now)
		if err != nil {
			return nil, err
		}
		data = append(data, ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: int(upcoming),
		})
	}

	logger.Info("Artist search completed", map[string]interface{}{
		"term":  term,
		"count": len(data),
	})
	return &ArtistSearchResults{Count: len(data), Data: data}, nil
}

// GetArtistPage builds the detail view: the artist plus its shows partitioned
// into past and upcoming by comparing start_time against now.
func (s *artistService) GetArtistPage(id uint) (*ArtistPage, error) {
	artist, err := s.artistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Artist not found", map[string]interface{}{
				"artist_id": id,
			})
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	shows, err := s.showRepo.FindByArtistID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	page := &ArtistPage{
		Artist:        *artist,
		PastShows:     []VenueShowInfo{},
		UpcomingShows: []VenueShowInfo{},
	}
	for _, show := range shows {
		info := VenueShowInfo{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime.Format(model.StartTimeDisplayFormat),
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

func (s *artistService) GetArtistByID(id uint) (*model.Artist, error) {
	artist, err := s.artistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) CreateArtist(artist *model.Artist) error {
	artist.ApplyDefaults()

	logger.Info("Creating new artist", map[string]interface{}{
		"name":  artist.Name,
		"city":  artist.City,
		"state": artist.State,
	})

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during artist creation, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Create(artist).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to create artist", err, map[string]interface{}{
			"name": artist.Name,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit artist creation", err, map[string]interface{}{
			"name": artist.Name,
		})
		return err
	}

	logger.Info("Artist created successfully", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return nil
}

// UpdateArtist overwrites every attribute of an existing artist with the
// submitted values.
func (s *artistService) UpdateArtist(artist *model.Artist) error {
	existing, err := s.artistRepo.FindByID(artist.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot update: artist not found", map[string]interface{}{
				"artist_id": artist.ID,
			})
			return ErrArtistNotFound
		}
		return err
	}

	artist.ApplyDefaults()

	existing.Name = artist.Name
	existing.City = artist.City
	existing.State = artist.State
	existing.Phone = artist.Phone
	existing.ImageLink = artist.ImageLink
	existing.Genres = artist.Genres
	existing.FacebookLink = artist.FacebookLink
	existing.Website = artist.Website
	existing.SeekingVenues = artist.SeekingVenues
	existing.SeekingDescription = artist.SeekingDescription

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during artist update, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Save(existing).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to update artist", err, map[string]interface{}{
			"artist_id": artist.ID,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit artist update", err, map[string]interface{}{
			"artist_id": artist.ID,
		})
		return err
	}

	logger.Info("Artist updated successfully", map[string]interface{}{
		"artist_id": artist.ID,
		"name":      artist.Name,
	})
	return nil
}

// DeleteArtist removes the artist and every show referencing it within one
// transaction.
func (s *artistService) DeleteArtist(id uint) error {
	artist, err := s.artistRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot delete: artist not found", map[string]interface{}{
				"artist_id": id,
			})
			return ErrArtistNotFound
		}
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during artist deletion, rolling back", fmt.Errorf("panic: %v", r))
		}
	}()

	if err := tx.Where("artist_id = ?", id).Delete(&model.Show{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete shows for artist", err, map[string]interface{}{
			"artist_id": id,
		})
		return err
	}

	if err := tx.Delete(artist).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete artist", err, map[string]interface{}{
			"artist_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit artist deletion", err, map[string]interface{}{
			"artist_id": id,
		})
		return err
	}

	logger.Info("Artist deleted successfully", map[string]interface{}{
		"artist_id": id,
		"name":      artist.Name,
	})
	return nil
}
