package scans

import "time"

// DemoScan is the fixed dataset shown to users who have no scans of their
// own. It mirrors the demo data the SPA falls back to when a fetch fails,
// so a fresh account sees a populated dashboard.
func DemoScan(userID string) Scan {
	return Scan{
		ID:             "demo-scan",
		UserID:         userID,
		CoherenceScore: 72,
		CreatedAt:      time.Date(2026, time.January, 15, 9, 0, 0, 0, time.UTC),
		Issues: []Issue{
			{
				ID:          "demo-issue-1",
				Name:        "Stressrespons",
				Description: "Forhøyet aktivering i det autonome nervesystemet.",
				Load:        68,
				Recommendations: []string{
					"Pusteøvelser morgen og kveld",
					"Reduser koffein etter kl. 12",
				},
			},
			{
				ID:          "demo-issue-2",
				Name:        "Tarmflora i ubalanse",
				Description: "Redusert mangfold i tarmfloraen.",
				Load:        45,
				Recommendations: []string{
					"Fermentert mat daglig",
					"Probiotika-kur i 4 uker",
				},
			},
			{
				ID:          "demo-issue-3",
				Name:        "Lett hormonell ubalanse",
				Description: "Svingninger i kortisolnivå gjennom døgnet.",
				Load:        32,
			},
			{
				ID:          "demo-issue-4",
				Name:        "Spenning i nakke og skuldre",
				Description: "Muskulær spenning knyttet til arbeidsstilling.",
				Load:        24,
			},
		},
		Components: []Component{
			{ID: "demo-comp-1", Category: "Nervesystem", Name: "Autonom balanse", Level: 64},
			{ID: "demo-comp-2", Category: "Nervesystem", Name: "Søvnregulering", Level: 52},
			{ID: "demo-comp-3", Category: "Fordøyelse", Name: "Tarmflora", Level: 48},
			{ID: "demo-comp-4", Category: "Hormoner", Name: "Kortisol", Level: 41},
			{ID: "demo-comp-5", Category: "Sirkulasjon", Name: "Mikrosirkulasjon", Level: 28},
			{ID: "demo-comp-6", Category: "Muskulatur", Name: "Nakke og skuldre", Level: 37},
			{ID: "demo-comp-7", Category: "Immunforsvar", Name: "Slimhinnebarriere", Level: 22},
			{ID: "demo-comp-8", Category: "Respirasjon", Name: "Pustemønster", Level: 33},
		},
	}
}
