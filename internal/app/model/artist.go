package model

const DefaultArtistSeekingDescription = "Not currently seeking performance venues"

type Artist struct {
	ID                 uint        `gorm:"primarykey" json:"id"`
	Name               string      `gorm:"not null" json:"name"`
	City               string      `gorm:"type:varchar(120);not null" json:"city"`
	State              string      `gorm:"type:varchar(120);not null" json:"state"`
	Phone              string      `gorm:"type:varchar(120);not null" json:"phone"`
	ImageLink          string      `gorm:"type:varchar(500);not null" json:"image_link"`
	Genres             StringArray `gorm:"type:text;not null" json:"genres"`
	FacebookLink       string      `gorm:"type:varchar(120);not null;default:'No Facebook page'" json:"facebook_link"`
	Website            string      `gorm:"type:varchar(120);not null;default:'No Website'" json:"website"`
	SeekingVenues      bool        `gorm:"not null;default:false" json:"seeking_venues"`
	SeekingDescription string      `gorm:"type:varchar(250);not null;default:'Not currently seeking performance venues'" json:"seeking_description"`

	// Shows are removed together with the artist.
	Shows []Show `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Artist) TableName() string {
	return "artists"
}

// ApplyDefaults fills the documented defaults for optional fields left empty
// by a form submission.
func (a *Artist) ApplyDefaults() {
	if a.FacebookLink == "" {
		a.FacebookLink = DefaultFacebookLink
	}
	if a.Website == "" {
		a.Website = DefaultWebsite
	}
	if a.SeekingDescription == "" {
		a.SeekingDescription = DefaultArtistSeekingDescription
	}
	if a.Genres == nil {
		a.Genres = StringArray{}
	}
}
