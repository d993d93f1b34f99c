package service

import (
	"testing"
	"time"

	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/app/repository"
	"github.com/mgately/fyyur-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupShowServiceTest(t *testing.T) (*gorm.DB, ShowService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	showRepo := repository.NewShowRepository(testDB)
	artistRepo := repository.NewArtistRepository(testDB)
	venueRepo := repository.NewVenueRepository(testDB)
	return testDB, NewShowService(showRepo, artistRepo, venueRepo, testDB)
}

func TestShowService_ListShows(t *testing.T) {
	testDB, showService := setupShowServiceTest(t)

	venue := venueFixture("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	artist := artistFixture("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	startTime := time.Date(2026, 6, 15, 20, 30, 0, 0, time.UTC)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: startTime,
	}).Error)

	listings, err := showService.ListShows()
	require.NoError(t, err)
	require.Len(t, listings, 1)

	listing := listings[0]
	assert.Equal(t, artist.ID, listing.ArtistID)
	assert.Equal(t, "Guns N Petals", listing.ArtistName)
	assert.Equal(t, "http://example.com/artist.jpg", listing.ArtistImageLink)
	assert.Equal(t, venue.ID, listing.VenueID)
	assert.Equal(t, "The Musical Hop", listing.VenueName)
	// month/day/year, hour:minute
	assert.Equal(t, "06/15/2026, 20:30", listing.StartTime)
}

func TestShowService_SearchByVenueName(t *testing.T) {
	testDB, showService := setupShowServiceTest(t)

	hop := venueFixture("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(hop).Error)
	park := venueFixture("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, testDB.Create(park).Error)
	artist := artistFixture("The Wild Sax Band")
	require.NoError(t, testDB.Create(artist).Error)

	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: hop.ID, StartTime: time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: park.ID, StartTime: time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: park.ID, StartTime: time.Now().Add(time.Hour),
	}).Error)

	results, err := showService.SearchByVenueName("Park")
	require.NoError(t, err)
	assert.Equal(t, 2, results.Count)
	for _, listing := range results.Data {
		assert.Equal(t, park.ID, listing.VenueID)
		assert.Equal(t, "Park Square Live Music & Coffee", listing.VenueName)
	}

	results, err = showService.SearchByVenueName("Music")
	require.NoError(t, err)
	assert.Equal(t, 3, results.Count)

	results, err = showService.SearchByVenueName("Opera")
	require.NoError(t, err)
	assert.Equal(t, 0, results.Count)
	assert.Empty(t, results.Data)
}

func TestShowService_CreateShow(t *testing.T) {
	testDB, showService := setupShowServiceTest(t)

	venue := venueFixture("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	artist := artistFixture("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	show := &model.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, showService.CreateShow(show))
	assert.NotZero(t, show.ID)

	var count int64
	require.NoError(t, testDB.Model(&model.Show{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestShowService_CreateShow_MissingParents(t *testing.T) {
	testDB, showService := setupShowServiceTest(t)

	venue := venueFixture("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	artist := artistFixture("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	err := showService.CreateShow(&model.Show{
		ArtistID: 9999, VenueID: venue.ID, StartTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrArtistNotFound)

	err = showService.CreateShow(&model.Show{
		ArtistID: artist.ID, VenueID: 9999, StartTime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	var count int64
	require.NoError(t, testDB.Model(&model.Show{}).Count(&count).Error)
	assert.Zero(t, count)
}
