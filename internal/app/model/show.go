package model

import "time"

// StartTimeDisplayFormat renders show start times as month/day/year, hour:minute.
const StartTimeDisplayFormat = "01/02/2006, 15:04"

// Show links exactly one artist to exactly one venue at one point in time.
// It has no lifecycle of its own beyond its parents.
type Show struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	ArtistID  uint      `gorm:"not null;index" json:"artist_id"`
	VenueID   uint      `gorm:"not null;index" json:"venue_id"`

	Artist Artist `gorm:"foreignKey:ArtistID" json:"-"`
	Venue  Venue  `gorm:"foreignKey:VenueID" json:"-"`
}

func (Show) TableName() string {
	return "shows"
}

// IsUpcoming reports whether the show starts strictly after now.
func (s *Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
