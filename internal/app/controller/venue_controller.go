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

type VenueController struct {
	venueService service.VenueService
}

func NewVenueController(venueService service.VenueService) *VenueController {
	return &VenueController{
		venueService: venueService,
	}
}

// VenueForm lists every accepted form field and its validation rule.
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone" binding:"required"`
	ImageLink          string   `form:"image_link" binding:"required"`
	Genres             []string `form:"genres" binding:"required"`
	FacebookLink       string   `form:"facebook_link"`
	Website            string   `form:"website"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *VenueForm) toModel() *model.Venue {
	return &model.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             model.StringArray(f.Genres),
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

// ListVenues renders all venues grouped by city and state.
// GET /venues
func (ctrl *VenueController) ListVenues(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	areas, err := ctrl.venueService.ListGroupedByCity()
	if err != nil {
		log.Error("Failed to build venue listing", err, nil)
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "venues.html", gin.H{
		"areas": areas,
	})
}

// SearchVenues matches venues by name, case-insensitively.
// POST /venues/search
func (ctrl *VenueController) SearchVenues(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	term := c.PostForm("search_term")

	results, err := ctrl.venueService.Search(term)
	if err != nil {
		log.Error("Venue search failed", err, map[string]interface{}{
			"term": term,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "search_venues.html", gin.H{
		"results":     results,
		"search_term": term,
	})
}

// ShowVenue renders a venue's detail page with past and upcoming shows.
// GET /venues/:id
func (ctrl *VenueController) ShowVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	page, err := ctrl.venueService.GetVenuePage(id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			apperrors.RenderNotFound(c)
			return
		}
		log.Error("Failed to build venue page", err, map[string]interface{}{
			"venue_id": id,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "show_venue.html", gin.H{
		"venue": page,
	})
}

// NewVenueForm renders the empty create-venue form.
// GET /venues/create
func (ctrl *VenueController) NewVenueForm(c *gin.Context) {
	render(c, http.StatusOK, "new_venue.html", nil)
}

// CreateVenue validates and persists a new venue. Either path ends on the
// home page.
// POST /venues/create
func (ctrl *VenueController) CreateVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Venue form validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		flashFormErrors(c, err)
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	venue := form.toModel()
	if err := ctrl.venueService.CreateVenue(venue); err != nil {
		log.Error("Failed to create venue", err, map[string]interface{}{
			"name": form.Name,
			"code": apperrors.ParseError(err, "venue").Code,
		})
		flash.Add(c, fmt.Sprintf("Unable to list Venue %s!", form.Name))
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	render(c, http.StatusOK, "home.html", nil)
}

// EditVenueForm renders the edit form pre-filled with current values.
// GET /venues/:id/edit
func (ctrl *VenueController) EditVenueForm(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	venue, err := ctrl.venueService.GetVenueByID(id)
	if err != nil {
		log.Error("Failed to load venue for editing", err, map[string]interface{}{
			"venue_id": id,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "edit_venue.html", gin.H{
		"venue": venue,
	})
}

// UpdateVenue overwrites a venue's attributes with the submitted values. It
// always redirects to the detail page; the outcome is signaled only through
// the flash text.
// POST /venues/:id/edit
func (ctrl *VenueController) UpdateVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}
	detailURL := fmt.Sprintf("/venues/%d", id)

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Venue edit validation failed", map[string]interface{}{
			"venue_id": id,
			"error":    err.Error(),
		})
		flashFormErrors(c, err)
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	venue := form.toModel()
	venue.ID = id
	if err := ctrl.venueService.UpdateVenue(venue); err != nil {
		log.Error("Failed to update venue", err, map[string]interface{}{
			"venue_id": id,
			"code":     apperrors.ParseError(err, "venue").Code,
		})
		flash.Add(c, fmt.Sprintf("Unable to update Venue %s!", form.Name))
		c.Redirect(http.StatusFound, detailURL)
		return
	}

	flash.Add(c, fmt.Sprintf("Venue %s was successfully updated!", form.Name))
	c.Redirect(http.StatusFound, detailURL)
}

// DeleteVenue removes a venue and, by cascade, its shows. Renders the home
// page afterward.
// POST /venues/:id
func (ctrl *VenueController) DeleteVenue(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseID(c)
	if err != nil {
		apperrors.RenderNotFound(c)
		return
	}

	if err := ctrl.venueService.DeleteVenue(id); err != nil {
		log.Error("Failed to delete venue", err, map[string]interface{}{
			"venue_id": id,
			"code":     apperrors.ParseError(err, "venue").Code,
		})
		flash.Add(c, "Unable to delete Venue!")
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Venue was successfully deleted!")
	render(c, http.StatusOK, "home.html", nil)
}
