// Seeds the demo dataset (three venues, three artists, and their shows) into
// the configured database.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/mgately/fyyur-backend/config"
	"github.com/mgately/fyyur-backend/internal/app/model"
	"github.com/mgately/fyyur-backend/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	conn := db.GetDB()

	var count int64
	if err := conn.Model(&model.Venue{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to inspect venues table:", err)
	}
	if count > 0 {
		fmt.Println("Venues already present, nothing to seed.")
		return
	}

	fmt.Print("Seed the demo dataset? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seeding cancelled.")
		return
	}

	venues := []model.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			Genres:             model.StringArray{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:      "The Dueling Pianos Bar",
			City:      "New York",
			State:     "NY",
			Address:   "335 Delancey Street",
			Phone:     "914-003-1132",
			ImageLink: "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=400",
			Genres:    model.StringArray{"Classical", "R&B", "Hip-Hop"},
		},
		{
			Name:      "Park Square Live Music & Coffee",
			City:      "San Francisco",
			State:     "CA",
			Address:   "34 Whiskey Moore Ave",
			Phone:     "415-000-1234",
			ImageLink: "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
			Genres:    model.StringArray{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}
	for i := range venues {
		venues[i].ApplyDefaults()
		if err := conn.Create(&venues[i]).Error; err != nil {
			log.Fatal("Failed to seed venue:", err)
		}
	}

	artists := []model.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			Genres:             model.StringArray{"Rock n Roll"},
			SeekingVenues:      true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:      "Matt Quevedo",
			City:      "New York",
			State:     "NY",
			Phone:     "300-400-5000",
			ImageLink: "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
			Genres:    model.StringArray{"Jazz"},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=400",
			Genres:    model.StringArray{"Jazz", "Classical"},
		},
	}
	for i := range artists {
		artists[i].ApplyDefaults()
		if err := conn.Create(&artists[i]).Error; err != nil {
			log.Fatal("Failed to seed artist:", err)
		}
	}

	now := time.Now()
	shows := []model.Show{
		{ArtistID: artists[0].ID, VenueID: venues[0].ID, StartTime: now.AddDate(-1, 0, 0)},
		{ArtistID: artists[1].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, -6, 0)},
		{ArtistID: artists[2].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, 1, 0)},
		{ArtistID: artists[2].ID, VenueID: venues[2].ID, StartTime: now.AddDate(0, 1, 7)},
	}
	for i := range shows {
		if err := conn.Create(&shows[i]).Error; err != nil {
			log.Fatal("Failed to seed show:", err)
		}
	}

	fmt.Printf("Seeded %d venues, %d artists, %d shows.\n", len(venues), len(artists), len(shows))
}
