package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/app/service"
	apperrors "github.com/mgately/fyyur-backend/internal/errors"
	"github.com/mgately/fyyur-backend/internal/flash"
	"github.com/mgately/fyyur-backend/internal/middleware"
)

type ArtistController struct {
	artistService service.ArtistService
}

func NewArtistController(artistService service.ArtistService) *ArtistController {
	return &ArtistController{
		artistService: artistService,
	}
}

// ArtistForm lists every accepted form field and its validation rule.
type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Phone              string   `form:"phone" binding:"required"`
	ImageLink          string   `form:"image_link" binding:"required"`
	Genres             []string `form:"genres" binding:"required"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingVenues      bool     `form:"seeking_venues"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *ArtistForm) toModel() *model.Artist {
	return &model.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             model.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenues:      f.SeekingVenues,
		SeekingDescription: f.SeekingDescription,
	}
}

// ListArtists renders all artists.
// GET /artists
func (ctrl *ArtistController) ListArtists(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	artists, err := ctrl.artistService.ListArtists()
	if err != nil {
		log.Error("Failed to build artist listing", err, nil)
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "artists.html", gin.H{
		"artists": artists,
	})
}

// SearchArtists matches artists by name, case-insensitively.
// POST /artists/search
func (ctrl *ArtistController) SearchArtists(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	term := c.PostForm("search_term")

	results, err := ctrl.artistService.Search(term)
	if err != nil {
		log.Error("Artist search failed", err, map[string]interface{}{
			"term": term,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "search_artists.html", gin.H{
		"results":     results,
		"search_term": term,
	})
}

// ShowArtist renders an artist's detail page with past and upcoming shows.
// GET /artists/:id
func (ctrl *ArtistController) ShowArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	page, err := ctrl.artistService.GetArtistPage(id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			apperrors.RenderNotFound(c)
			return
		}
		log.Error("Failed to build artist page", err, map[string]interface{}{
			"artist_id": id,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "show_artist.html", gin.H{
		"artist": page,
	})
}

// NewArtistForm renders the empty create-artist form.
// GET /artists/create
func (ctrl *ArtistController) NewArtistForm(c *gin.Context) {
	render(c, http.StatusOK, "new_artist.html", nil)
}

// CreateArtist validates and persists a new artist. Either path ends on the
// home page.
// POST /artists/create
func (ctrl *ArtistController) CreateArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Artist form validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		flashFormErrors(c, err)
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	artist := form.toModel()
	if err := ctrl.artistService.CreateArtist(artist); err != nil {
		log.Error("Failed to create artist", err, map[string]interface{}{
			"name": form.Name,
			"code": apperrors.ParseError(err, "artist").Code,
		})
		flash.Add(c, fmt.Sprintf("Unable to list Artist %s!", form.Name))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	render(c, http.StatusOK, "home.html", nil)
}

// EditArtistForm renders the edit form pre-filled with current values.
// GET /artists/:id/edit
func (ctrl *ArtistController) EditArtistForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	artist, err := ctrl.artistService.GetArtistByID(id)
	if err != nil {
		log.Error("Failed to load artist for editing", err, map[string]interface{}{
			"artist_id": id,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "edit_artist.html", gin.H{
		"artist": artist,
	})
}

// UpdateArtist overwrites an artist's attributes with the submitted values.
// It always redirects to the detail page; the outcome is signaled only
// through the flash text.
// POST /artists/:id/edit
func (ctrl *ArtistController) UpdateArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}
	detailURL := fmt.Sprintf("/artists/%d", id)

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Artist edit validation failed", map[string]interface{}{
			"artist_id": id,
			"error":     err.Error(),
		})
		flashFormErrors(c, err)
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	artist := form.toModel()
	artist.ID = id
	if err := ctrl.artistService.UpdateArtist(artist); err != nil {
		log.Error("Failed to update artist", err, map[string]interface{}{
			"artist_id": id,
			"code":      apperrors.ParseError(err, "artist").Code,
		})
		flash.Add(c, fmt.Sprintf("Unable to update Artist %s!", form.Name))
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	flash.Add(c, fmt.Sprintf("Artist %s was successfully updated!", form.Name))
	c.Redirect(http.StatusFound, detailURL)
}

// DeleteArtist removes an artist and, by cascade, its shows. Renders the home
// page afterward.
// POST /artists/:id
func (ctrl *ArtistController) DeleteArtist(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	if err := ctrl.artistService.DeleteArtist(id); err != nil {
		log.Error("Failed to delete artist", err, map[string]interface{}{
			"artist_id": id,
			"code":      apperrors.ParseError(err, "artist").Code,
		})
		flash.Add(c, "Unable to delete Artist!")
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Artist was successfully deleted!")
	render(c, http.StatusOK, "home.html", nil)
}
