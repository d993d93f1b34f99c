package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mgately/fyyur-backend/config"
	"github.com/mgately/fyyur-backend/internal/app/controller"
	apperrors "github.com/mgately/fyyur-backend/internal/errors"
	"github.com/mgately/fyyur-backend/internal/middleware"
)

type Router struct {
	venueController  *controller.VenueController
	artistController *controller.ArtistController
	showController   *controller.ShowController
	config           *config.Config
}

func NewRouter(
	venueController *controller.VenueController,
	artistController *controller.ArtistController,
	showController *controller.ShowController,
	cfg *config.Config,
) *Router {
	return &Router{
		venueController:  venueController,
		artistController: artistController,
		showController:   showController,
		config:           cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	// Unhandled panics surface as the generic 500 page, never a stack trace.
	router.Use(gin.CustomRecovery(func(c *gin.Context, err interface{}) {
		apperrors.RenderServerError(c)
	}))
	router.Use(middleware.LoggingMiddleware())

	router.LoadHTMLGlob("web/templates/*.html")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Fyyur is running",
		})
	})

	router.GET("/", controller.Home)

	venues := router.Group("/venues")
	{
		venues.GET("", r.venueController.ListVenues)
		venues.POST("/search", r.venueController.SearchVenues)
		venues.GET("/create", r.venueController.NewVenueForm)
		venues.POST("/create", r.venueController.CreateVenue)
		venues.GET("/:id", r.venueController.ShowVenue)
		venues.GET("/:id/edit", r.venueController.EditVenueForm)
		venues.POST("/:id/edit", r.venueController.UpdateVenue)
		venues.POST("/:id", r.venueController.DeleteVenue)
	}

	artists := router.Group("/artists")
	{
		artists.GET("", r.artistController.ListArtists)
		artists.POST("/search", r.artistController.SearchArtists)
		artists.GET("/create", r.artistController.NewArtistForm)
		artists.POST("/create", r.artistController.CreateArtist)
		artists.GET("/:id", r.artistController.ShowArtist)
		artists.GET("/:id/edit", r.artistController.EditArtistForm)
		artists.POST("/:id/edit", r.artistController.UpdateArtist)
		artists.POST("/:id", r.artistController.DeleteArtist)
	}

	shows := router.Group("/shows")
	{
		shows.GET("", r.showController.ListShows)
		shows.POST("/search", r.showController.SearchShows)
		shows.GET("/create", r.showController.NewShowForm)
		shows.POST("/create", r.showController.CreateShow)
	}

	router.NoRoute(func(c *gin.Context) {
		apperrors.RenderNotFound(c)
	})

	return router
}
