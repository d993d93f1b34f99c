package repository

import (
	"testing"
	"time"

	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupShowTest(t *testing.T) (*gorm.DB, ShowRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	repo := NewShowRepository(testDB)
	return testDB, repo
}

func newArtist(name string) *model.Artist {
	return &model.Artist{
		Name:               name,
		City:               "San Francisco",
		State:              "CA",
		Phone:              "555-000-0000",
		ImageLink:          "http://example.com/artist.jpg",
		FacebookLink:       model.DefaultFacebookLink,
		Website:            model.DefaultWebsite,
		Genres:             model.StringArray{"Rock n Roll"},
		SeekingDescription: model.DefaultArtistSeekingDescription,
	}
}

func TestShowRepository_FindByVenueID(t *testing.T) {
	testDB, repo := setupShowTest(t)

	venue := newVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	other := newVenue("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, testDB.Create(other).Error)
	artist := newArtist("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: time.Now().Add(24 * time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: other.ID, ArtistID: artist.ID, StartTime: time.Now().Add(24 * time.Hour),
	}).Error)

	shows, err := repo.FindByVenueID(venue.ID)
	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, venue.ID, shows[0].VenueID)
	// Artist is preloaded for display
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
}

func TestShowRepository_CountUpcomingByVenueID(t *testing.T) {
	testDB, repo := setupShowTest(t)

	venue := newVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	artist := newArtist("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	now := time.Now()
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(48 * time.Hour),
	}).Error)

	count, err := repo.CountUpcomingByVenueID(venue.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestShowRepository_CountUpcomingByArtistID(t *testing.T) {
	testDB, repo := setupShowTest(t)

	venue := newVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)
	artist := newArtist("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)
	other := newArtist("Matt Quevedo")
	require.NoError(t, testDB.Create(other).Error)

	now := time.Now()
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: artist.ID, StartTime: now.Add(time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue.ID, ArtistID: other.ID, StartTime: now.Add(time.Hour),
	}).Error)

	count, err := repo.CountUpcomingByArtistID(artist.ID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestShowRepository_FindByVenueIDs(t *testing.T) {
	testDB, repo := setupShowTest(t)

	venue1 := newVenue("The Musical Hop", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue1).Error)
	venue2 := newVenue("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue2).Error)
	artist := newArtist("The Wild Sax Band")
	require.NoError(t, testDB.Create(artist).Error)

	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue1.ID, ArtistID: artist.ID, StartTime: time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		VenueID: venue2.ID, ArtistID: artist.ID, StartTime: time.Now(),
	}).Error)

	shows, err := repo.FindByVenueIDs([]uint{venue1.ID, venue2.ID})
	require.NoError(t, err)
	assert.Len(t, shows, 2)

	shows, err = repo.FindByVenueIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, shows)
}
