package content

import (
	"context"
	"fmt"
	"time"

	"kabarett-api/internal/models"
	"kabarett-api/internal/utils"
)

// Seed populates the demo content when the database holds no events
// yet: one theater, two owner profiles, three events and the current
// month's background video. Calling it again is a no-op. The returned
// bool reports whether anything was inserted.
func (s *Service) Seed(ctx context.Context) (bool, error) {
	n, err := s.DB.Count(ctx, models.EventCollection)
	if err != nil {
		return false, fmt.Errorf("count events: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	now := time.Now().UTC()

	if _, err := s.DB.Create(ctx, models.TheaterCollection, demoTheater()); err != nil {
		return false, fmt.Errorf("seed theater: %w", err)
	}

	for _, owner := range demoOwners() {
		if _, err := s.DB.Create(ctx, models.OwnerProfileCollection, owner); err != nil {
			return false, fmt.Errorf("seed owner %s: %w", owner.Name, err)
		}
	}

	for _, event := range demoEvents(now) {
		if _, err := s.DB.Create(ctx, models.EventCollection, event); err != nil {
			return false, fmt.Errorf("seed event %s: %w", event.Title, err)
		}
	}

	video := models.Video{
		MonthKey: utils.MonthKey(now),
		VideoURL: "https://cdn.coverr.co/videos/coverr-theatre-actors-having-fun-0044/1080p.mp4",
		Caption:  "Aus dem aktuellen Programm",
	}
	if _, err := s.DB.Create(ctx, models.VideoCollection, video); err != nil {
		return false, fmt.Errorf("seed video: %w", err)
	}

	return true, nil
}

func demoTheater() models.Theater {
	return models.Theater{
		Name:    "Kabarett Salon am Kanal",
		Tagline: "Quirky. Wien. Mit Schmäh.",
		Story: "Geboren aus dem Geist der Kaffeehauskultur, lebt unser kleines Kabarett die große Liebe " +
			"zum spontanen Wort. Zwischen Samtvorhängen und Messinglampen trifft moderner Humor auf " +
			"den Charme vergangener Nächte.",
		Address:        "Schwarzer-Bären-Gasse 12, 1050 Wien",
		Phone:          "+43 1 234 56 78",
		Email:          "kontakt@kabarett-salon.at",
		OpeningHours:   "Di–So ab 18:00",
		TransportHowto: "U4 bis Kettenbrückengasse, dann 5 Minuten zu Fuß",
	}
}

func demoOwners() []models.OwnerProfile {
	return []models.OwnerProfile{
		{
			Name:      "Lena Weiss",
			Role:      "Leitung & Bühne",
			Bio:       "Kabarettistin, Dramaturgin und Barflüsterin. Liebt Altbaufliesen und schnelle Pointen.",
			ImageURL:  "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=600&h=600&fit=crop",
			Instagram: "https://instagram.com/lenakabarett",
		},
		{
			Name:     "Milo Berger",
			Role:     "Impro & Programm",
			Bio:      "Impro-Spieler und Organisator. Findet Geschichten in jeder U-Bahnfahrt.",
			ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=600&h=600&fit=crop",
			Website:  "https://miloberger.example.com",
		},
	}
}

func demoEvents(base time.Time) []models.Event {
	// The workshop lands a few days out; capping at day 28 keeps the
	// date valid in every month.
	workshopDay := base.Day() + 3
	if workshopDay > 28 {
		workshopDay = 28
	}

	return []models.Event{
		{
			Title:           "Wiener Schmäh & Schnapsidee",
			Description:     "Kabarett-Abend mit Biss und Bussi.",
			Genre:           "Kabarett",
			Date:            time.Date(base.Year(), base.Month(), base.Day(), 19, 30, 0, 0, time.UTC),
			DurationMinutes: 90,
			PriceEUR:        18.0,
			SeatsTotal:      60,
			SeatsAvailable:  60,
			ImageURL:        "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=1200&auto=format&fit=crop&q=60",
		},
		{
			Title:           "Impro am Kanal: Alles kann passieren",
			Description:     "Improvisationstheater – du gibst vor, wir legen los!",
			Genre:           "Impro",
			Date:            time.Date(base.Year(), base.Month(), base.Day(), 20, 0, 0, 0, time.UTC),
			DurationMinutes: 75,
			PriceEUR:        15.0,
			SeatsTotal:      60,
			SeatsAvailable:  60,
			ImageURL:        "https://images.unsplash.com/photo-1515165562835-c3b8c1ea0f59?w=1200&auto=format&fit=crop&q=60",
		},
		{
			Title:           "Werkstatt Humor: Basics für Einsteiger:innen",
			Description:     "Workshop für spontane Bühnenmenschen.",
			Genre:           "Workshop",
			Date:            time.Date(base.Year(), base.Month(), workshopDay, 18, 0, 0, 0, time.UTC),
			DurationMinutes: 120,
			PriceEUR:        40.0,
			SeatsTotal:      20,
			SeatsAvailable:  20,
			ImageURL:        "https://images.unsplash.com/photo-1496307042754-b4aa456c4a2d?w=1200&auto=format&fit=crop&q=60",
		},
	}
}
