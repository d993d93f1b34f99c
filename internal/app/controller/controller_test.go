package controller

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mgately/fyyur-backend/internal/app/repository"
	"github.com/mgately/fyyur-backend/internal/app/service"
	"github.com/mgately/fyyur-backend/internal/db"
	apperrors "github.com/mgately/fyyur-backend/internal/errors"
	"github.com/mgately/fyyur-backend/internal/flash"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testTemplates is a minimal stand-in for web/templates: each page shows its
// name and any pending flash messages, which is all the handler tests assert
// against.
const testTemplates = `
{{define "flashbar"}}{{range .flashes}}<div class="flash">{{.}}</div>{{end}}{{end}}
{{define "home.html"}}<h1>home</h1>{{template "flashbar" .}}{{end}}
{{define "venues.html"}}<h1>venues</h1>{{template "flashbar" .}}{{end}}
{{define "search_venues.html"}}<h1>search_venues</h1>{{template "flashbar" .}}{{end}}
{{define "show_venue.html"}}<h1>show_venue {{.venue.Name}}</h1>{{template "flashbar" .}}{{end}}
{{define "new_venue.html"}}<h1>new_venue</h1>{{template "flashbar" .}}{{end}}
{{define "edit_venue.html"}}<h1>edit_venue {{.venue.Name}}</h1>{{template "flashbar" .}}{{end}}
{{define "artists.html"}}<h1>artists</h1>{{template "flashbar" .}}{{end}}
{{define "search_artists.html"}}<h1>search_artists</h1>{{template "flashbar" .}}{{end}}
{{define "show_artist.html"}}<h1>show_artist {{.artist.Name}}</h1>{{template "flashbar" .}}{{end}}
{{define "new_artist.html"}}<h1>new_artist</h1>{{template "flashbar" .}}{{end}}
{{define "edit_artist.html"}}<h1>edit_artist {{.artist.Name}}</h1>{{template "flashbar" .}}{{end}}
{{define "shows.html"}}<h1>shows</h1>{{template "flashbar" .}}{{end}}
{{define "search_shows.html"}}<h1>search_shows</h1>{{template "flashbar" .}}{{end}}
{{define "new_show.html"}}<h1>new_show</h1>{{template "flashbar" .}}{{end}}
{{define "404.html"}}<h1>not found</h1>{{end}}
{{define "500.html"}}<h1>server error</h1>{{end}}
`

// newTestServer wires the full controller stack against an in-memory
// database, mirroring the production route table.
func newTestServer(t *testing.T) (*gorm.DB, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	flash.Initialize("test-secret")

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	venueRepo := repository.NewVenueRepository(testDB)
	artistRepo := repository.NewArtistRepository(testDB)
	showRepo := repository.NewShowRepository(testDB)

	venueController := NewVenueController(service.NewVenueService(venueRepo, showRepo, testDB))
	artistController := NewArtistController(service.NewArtistService(artistRepo, showRepo, testDB))
	showController := NewShowController(service.NewShowService(showRepo, artistRepo, venueRepo, testDB))

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("pages").Parse(testTemplates)))

	engine.GET("/", Home)

	venues := engine.Group("/venues")
	{
		venues.GET("", venueController.ListVenues)
		venues.POST("/search", venueController.SearchVenues)
		venues.GET("/create", venueController.NewVenueForm)
		venues.POST("/create", venueController.CreateVenue)
		venues.GET("/:id", venueController.ShowVenue)
		venues.GET("/:id/edit", venueController.EditVenueForm)
		venues.POST("/:id/edit", venueController.UpdateVenue)
		venues.POST("/:id", venueController.DeleteVenue)
	}

	artists := engine.Group("/artists")
	{
		artists.GET("", artistController.ListArtists)
		artists.POST("/search", artistController.SearchArtists)
		artists.GET("/create", artistController.NewArtistForm)
		artists.POST("/create", artistController.CreateArtist)
		artists.GET("/:id", artistController.ShowArtist)
		artists.GET("/:id/edit", artistController.EditArtistForm)
		artists.POST("/:id/edit", artistController.UpdateArtist)
		artists.POST("/:id", artistController.DeleteArtist)
	}

	shows := engine.Group("/shows")
	{
		shows.GET("", showController.ListShows)
		shows.POST("/search", showController.SearchShows)
		shows.GET("/create", showController.NewShowForm)
		shows.POST("/create", showController.CreateShow)
	}

	engine.NoRoute(func(c *gin.Context) {
		apperrors.RenderNotFound(c)
	})

	return testDB, engine
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func doPostForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}
