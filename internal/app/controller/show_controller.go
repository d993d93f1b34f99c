package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/app/service"
	apperrors "github.com/mgately/fyyur-backend/internal/errors"
	"github.com/mgately/fyyur-backend/internal/flash"
	"github.com/mgately/fyyur-backend/internal/middleware"
)

type ShowController struct {
	showService service.ShowService
}

func NewShowController(showService service.ShowService) *ShowController {
	return &ShowController{
		showService: showService,
	}
}

// ShowForm lists every accepted form field and its validation rule.
type ShowForm struct {
	ArtistID  uint      `form:"artist_id" binding:"required"`
	VenueID   uint      `form:"venue_id" binding:"required"`
	StartTime time.Time `form:"start_time" time_format:"2006-01-02 15:04:05" binding:"required"`
}

// ListShows renders all shows with artist and venue display fields.
// GET /shows
func (ctrl *ShowController) ListShows(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	shows, err := ctrl.showService.ListShows()
	if err != nil {
		log.Error("Failed to build show listing", err, nil)
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "shows.html", gin.H{
		"shows": shows,
	})
}

// SearchShows returns the shows of every venue whose name matches the term.
// POST /shows/search
func (ctrl *ShowController) SearchShows(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	term := c.PostForm("search_term")

	results, err := ctrl.showService.SearchByVenueName(term)
	if err != nil {
		log.Error("Show search failed", err, map[string]interface{}{
			"term": term,
		})
		apperrors.RenderServerError(c)
		return
	}

	render(c, http.StatusOK, "search_shows.html", gin.H{
		"results":     results,
		"search_term": term,
	})
}

// NewShowForm renders the empty create-show form.
// GET /shows/create
func (ctrl *ShowController) NewShowForm(c *gin.Context) {
	render(c, http.StatusOK, "new_show.html", nil)
}

// CreateShow validates and persists a new show. Either path ends on the home
// page.
// POST /shows/create
func (ctrl *ShowController) CreateShow(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		log.Warn("Show form validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		flashFormErrors(c, err)
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	show := &model.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: form.StartTime,
	}
	if err := ctrl.showService.CreateShow(show); err != nil {
		log.Error("Failed to create show", err, map[string]interface{}{
			"artist_id": form.ArtistID,
			"venue_id":  form.VenueID,
			"code":      apperrors.ParseError(err, "show").Code,
		})
		flash.Add(c, "Unable to list Show for date "+form.StartTime.Format(model.StartTimeDisplayFormat)+"!")
		render(c, http.StatusOK, "home.html", nil)
		return
	}

	flash.Add(c, "Show was successfully listed!")
	render(c, http.StatusOK, "home.html", nil)
}
