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

func setupArtistServiceTest(t *testing.T) (*gorm.DB, ArtistService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	artistRepo := repository.NewArtistRepository(testDB)
	showRepo := repository.NewShowRepository(testDB)
	return testDB, NewArtistService(artistRepo, showRepo, testDB)
}

func TestArtistService_Search(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	require.NoError(t, testDB.Create(artistFixture("Guns N Petals")).Error)
	require.NoError(t, testDB.Create(artistFixture("Matt Quevedo")).Error)
	require.NoError(t, testDB.Create(artistFixture("The Wild Sax Band")).Error)

	tests := []struct {
		name      string
		term      string
		wantCount int
	}{
		{name: "Single letter matches all", term: "a", wantCount: 3},
		{name: "Case-insensitive word", term: "band", wantCount: 1},
		{name: "Empty term matches all", term: "", wantCount: 3},
		{name: "No match", term: "Quartet", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := artistService.Search(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, results.Count)
			assert.Len(t, results.Data, tt.wantCount)
		})
	}
}

func TestArtistService_Search_CountsUpcomingShows(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	artist := artistFixture("The Wild Sax Band")
	require.NoError(t, testDB.Create(artist).Error)
	venue := venueFixture("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)

	now := time.Now()
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(2 * time.Hour),
	}).Error)

	results, err := artistService.Search("sax")
	require.NoError(t, err)
	require.Equal(t, 1, results.Count)
	assert.Equal(t, artist.ID, results.Data[0].ID)
	assert.Equal(t, "The Wild Sax Band", results.Data[0].Name)
	assert.Equal(t, 2, results.Data[0].NumUpcomingShows)
}

func TestArtistService_GetArtistPage(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	artist := artistFixture("The Wild Sax Band")
	require.NoError(t, testDB.Create(artist).Error)
	venue := venueFixture("Park Square Live Music & Coffee", "San Francisco", "CA")
	require.NoError(t, testDB.Create(venue).Error)

	now := time.Now()
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(time.Hour),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: now.Add(2 * time.Hour),
	}).Error)

	page, err := artistService.GetArtistPage(artist.ID)
	require.NoError(t, err)

	assert.Equal(t, "The Wild Sax Band", page.Name)
	assert.Equal(t, 1, page.PastShowsCount)
	assert.Equal(t, 2, page.UpcomingShowsCount)
	require.Len(t, page.PastShows, 1)
	assert.Equal(t, venue.ID, page.PastShows[0].VenueID)
	assert.Equal(t, "Park Square Live Music & Coffee", page.PastShows[0].VenueName)
	assert.Equal(t, "http://example.com/venue.jpg", page.PastShows[0].VenueImageLink)
}

func TestArtistService_GetArtistPage_NotFound(t *testing.T) {
	_, artistService := setupArtistServiceTest(t)

	_, err := artistService.GetArtistPage(9999)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestArtistService_CreateArtist_Defaults(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	artist := &model.Artist{
		Name:      "Guns N Petals",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "326-123-5000",
		ImageLink: "http://x",
		Genres:    model.StringArray{"Rock n Roll"},
	}
	require.NoError(t, artistService.CreateArtist(artist))

	var stored model.Artist
	require.NoError(t, testDB.First(&stored, artist.ID).Error)
	assert.Equal(t, model.DefaultFacebookLink, stored.FacebookLink)
	assert.Equal(t, model.DefaultWebsite, stored.Website)
	assert.Equal(t, model.DefaultArtistSeekingDescription, stored.SeekingDescription)
	assert.False(t, stored.SeekingVenues)
}

func TestArtistService_UpdateArtist_OverwritesAttributes(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	artist := artistFixture("Guns N Petals")
	require.NoError(t, testDB.Create(artist).Error)

	updated := artistFixture("Guns N Roses Tribute")
	updated.ID = artist.ID
	updated.City = "Los Angeles"
	updated.SeekingVenues = true
	require.NoError(t, artistService.UpdateArtist(updated))

	var stored model.Artist
	require.NoError(t, testDB.First(&stored, artist.ID).Error)
	assert.Equal(t, "Guns N Roses Tribute", stored.Name)
	assert.Equal(t, "Los Angeles", stored.City)
	assert.True(t, stored.SeekingVenues)
}

func TestArtistService_DeleteArtist_CascadesShows(t *testing.T) {
	testDB, artistService := setupArtistServiceTest(t)

	artist := artistFixture("Matt Quevedo")
	require.NoError(t, testDB.Create(artist).Error)
	venue := venueFixture("The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, testDB.Create(venue).Error)

	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now(),
	}).Error)
	require.NoError(t, testDB.Create(&model.Show{
		ArtistID: artist.ID, VenueID: venue.ID, StartTime: time.Now().Add(time.Hour),
	}).Error)

	require.NoError(t, artistService.DeleteArtist(artist.ID))

	var artistCount, showCount int64
	require.NoError(t, testDB.Model(&model.Artist{}).Count(&artistCount).Error)
	require.NoError(t, testDB.Model(&model.Show{}).Count(&showCount).Error)
	assert.Zero(t, artistCount)
	assert.Zero(t, showCount)
}
