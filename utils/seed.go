package utils

import (
	"log/slog"

	"detailpro-backend/models"

	"gorm.io/gorm"
)

// SeedDatabase inserts the launch catalog: the six detailing services, the
// affiliate products and the social links. Rows that already exist (by their
// unique name/platform) are left alone, so it is safe to run on every boot.
func SeedDatabase(db *gorm.DB, logger *slog.Logger) {
	services := []models.Service{
		{
			Name:        "Express Wash",
			Description: "Quick exterior hand wash and dry. Perfect for regular maintenance.",
			BasePrice:   25,
			Duration:    30,
			Category:    "Exterior",
			IsActive:    true,
			Order:       1,
		},
		{
			Name:        "Standard Exterior Detail",
			Description: "Complete exterior detail including hand wash, clay bar treatment, polish, and wax.",
			BasePrice:   80,
			Duration:    120,
			Category:    "Exterior",
			IsActive:    true,
			Order:       2,
		},
		{
			Name:        "Premium Exterior Detail",
			Description: "Our most comprehensive exterior service with paint correction and ceramic coating.",
			BasePrice:   150,
			Duration:    240,
			Category:    "Exterior",
			IsActive:    true,
			Order:       3,
		},
		{
			Name:        "Interior Detail",
			Description: "Deep clean of entire interior including vacuum, steam clean, leather treatment.",
			BasePrice:   70,
			Duration:    120,
			Category:    "Interior",
			IsActive:    true,
			Order:       4,
		},
		{
			Name:        "Full Detail",
			Description: "Complete interior and exterior detail. The ultimate car care package.",
			BasePrice:   140,
			Duration:    240,
			Category:    "Full Detail",
			IsActive:    true,
			Order:       5,
		},
		{
			Name:        "Paint Correction",
			Description: "Multi-stage machine polish to remove swirl marks and scratches.",
			BasePrice:   200,
			Duration:    360,
			Category:    "Specialist",
			IsActive:    true,
			Order:       6,
		},
	}
	for _, s := range services {
		var existing models.Service
		if err := db.Where("name = ?", s.Name).First(&existing).Error; err != nil {
			if err := db.Create(&s).Error; err != nil {
				logger.Error("failed to seed service", "name", s.Name, "error", err)
			}
		}
	}

	products := []models.Product{
		{
			Name:        "Meguiar's Ultimate Wash & Wax",
			Description: "Professional car wash with wax protection in one step",
			AmazonURL:   "https://www.amazon.co.uk/dp/B001O7PNNM",
			Category:    "Washing",
			IsActive:    true,
			Order:       1,
		},
		{
			Name:        "Chemical Guys Leather Conditioner",
			Description: "Premium leather cleaner and conditioner",
			AmazonURL:   "https://www.amazon.co.uk/dp/B001TJ3Z9M",
			Category:    "Interior",
			IsActive:    true,
			Order:       2,
		},
		{
			Name:        "Turtle Wax Ceramic Spray Coating",
			Description: "Easy-apply ceramic coating for long-lasting shine",
			AmazonURL:   "https://www.amazon.co.uk/dp/B07VFNW2R8",
			Category:    "Protection",
			IsActive:    true,
			Order:       3,
		},
		{
			Name:        "Microfiber Cleaning Cloths Pack",
			Description: "Premium microfiber towels for detailing",
			AmazonURL:   "https://www.amazon.co.uk/dp/B07BFXX6VR",
			Category:    "Accessories",
			IsActive:    true,
			Order:       4,
		},
	}
	for _, p := range products {
		var existing models.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := db.Create(&p).Error; err != nil {
				logger.Error("failed to seed product", "name", p.Name, "error", err)
			}
		}
	}

	links := []models.SocialLink{
		{Platform: "instagram", URL: "https://instagram.com/yourhandle", Order: 1},
		{Platform: "tiktok", URL: "https://tiktok.com/@yourhandle", Order: 2},
	}
	for _, l := range links {
		var existing models.SocialLink
		if err := db.Where("platform = ?", l.Platform).First(&existing).Error; err != nil {
			if err := db.Create(&l).Error; err != nil {
				logger.Error("failed to seed social link", "platform", l.Platform, "error", err)
			}
		}
	}

	logger.Info("database seeded")
}
