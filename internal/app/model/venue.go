package model

const (
	DefaultFacebookLink            = "No Facebook page"
	DefaultWebsite                 = "No Website"
	DefaultVenueSeekingDescription = "Not currently seeking talent"
)

type Venue struct {
	ID                 uint        `gorm:"primarykey" json:"id"`
	Name               string      `gorm:"not null" json:"name"`
	City               string      `gorm:"type:varchar(120);not null;index:idx_venues_city_state" json:"city"`
	State              string      `gorm:"type:varchar(120);not null;index:idx_venues_city_state" json:"state"`
	Address            string      `gorm:"type:varchar(120);not null" json:"address"`
	Phone              string      `gorm:"type:varchar(120);not null" json:"phone"`
	ImageLink          string      `gorm:"type:varchar(500);not null" json:"image_link"`
	FacebookLink       string      `gorm:"type:varchar(120);not null;default:'No Facebook page'" json:"facebook_link"`
	Website            string      `gorm:"type:varchar(120);not null;default:'No Website'" json:"website"`
	Genres             StringArray `gorm:"type:text;not null" json:"genres"`
	SeekingTalent      bool        `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string      `gorm:"type:varchar(250);not null;default:'Not currently seeking talent'" json:"seeking_description"`

	// Shows are removed together with the venue.
	Shows []Show `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Venue) TableName() string {
	return "venues"
}

// ApplyDefaults fills the documented defaults for optional fields left empty
// by a form submission.
func (v *Venue) ApplyDefaults() {
	if v.FacebookLink == "" {
		v.FacebookLink = DefaultFacebookLink
	}
	if v.Website == "" {
		v.Website = DefaultWebsite
	}
	if v.SeekingDescription == "" {
		v.SeekingDescription = DefaultVenueSeekingDescription
	}
	if v.Genres == nil {
		v.Genres = StringArray{}
	}
}
