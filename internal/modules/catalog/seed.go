package catalog

import (
	"context"
	"fmt"

	"buildconnect/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCategories is the catalog a fresh install starts with.
func DefaultCategories() []domain.ServiceCategory {
	return []domain.ServiceCategory{
		{
			Name:        "Repair & Maintenance",
			Slug:        "repair-maintenance",
			Description: "Expert repair and maintenance services for your home and office",
			Icon:        "Wrench",
			Services: []string{
				"Plumber", "Electrician", "Carpenter", "Handyman", "AC Technician", "Refrigerator Repair",
				"Washing Machine Repair", "Microwave Repair", "Geyser Repair", "RO Technician", "Inverter Repair",
			},
		},
		{
			Name:        "Cleaning & Housekeeping",
			Slug:        "cleaning-housekeeping",
			Description: "Professional cleaning services for spotless spaces",
			Icon:        "Sparkles",
			Services: []string{
				"House Cleaning", "Office Cleaning", "Deep Cleaning", "Bathroom Cleaning", "Kitchen Cleaning",
				"Sofa Cleaning", "Carpet Cleaning", "Water Tank Cleaning", "Pest Control",
			},
		},
		{
			Name:        "Painting & Renovation",
			Slug:        "painting-renovation",
			Description: "Transform your space with expert painting and renovation",
			Icon:        "PaintBucket",
			Services: []string{
				"Interior Painting", "Exterior Painting", "Wall Putty", "Tile Installation", "Flooring",
				"False Ceiling", "Waterproofing", "Wallpaper Installation",
			},
		},
		{
			Name:        "Security & Safety",
			Slug:        "security-safety",
			Description: "Keep your property secure with professional security services",
			Icon:        "Shield",
			Services:    []string{"Security Guard", "CCTV Installation", "Alarm System", "Fire Safety Equipment", "Smart Locks"},
		},
		{
			Name:        "Personal & Domestic",
			Slug:        "personal-domestic",
			Description: "Reliable domestic help for your daily needs",
			Icon:        "Home",
			Services:    []string{"Maid", "Cook", "Babysitter", "Elder Care", "Driver"},
		},
		{
			Name:        "Office Services",
			Slug:        "office-services",
			Description: "Professional office support services",
			Icon:        "Briefcase",
			Services:    []string{"IT Support", "Computer Repair", "Printer Repair", "Network Setup", "Facility Management"},
		},
		{
			Name:        "Moving & Logistics",
			Slug:        "moving-logistics",
			Description: "Safe and efficient moving and storage solutions",
			Icon:        "Truck",
			Services:    []string{"Packers & Movers", "House Shifting", "Office Relocation", "Storage Services"},
		},
	}
}

// Seed upserts the default categories by slug. Running it twice leaves one
// row per slug.
func (s *Service) Seed(ctx context.Context) error {
	defaults := DefaultCategories()
	for i := range defaults {
		c := &defaults[i]
		c.ID = uuid.NewString()
		if err := s.categories.Upsert(ctx, c); err != nil {
			return fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
	}
	s.log.Info("service categories seeded", zap.Int("count", len(defaults)))
	return nil
}
