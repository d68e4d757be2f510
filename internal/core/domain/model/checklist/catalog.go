package checklist

import (
	"encoding/json"
	"fmt"
	"os"

	"carcheck/internal/pkg/errs"
)

// Category is one inspection area with its canonical checklist point names.
type Category struct {
	ID     string   `json:"categoryId"`
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// Catalog is the ordered list of inspection categories. Point names are
// canonical: the inspector's answers and the synthesized report reference
// them verbatim.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Validate checks that the catalog is non-empty and that point names are
// unique and non-empty across all categories.
func (c Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errs.NewValueIsRequiredError("catalog.categories")
	}

	seen := make(map[string]struct{})
	for _, category := range c.Categories {
		if category.ID == "" {
			return errs.NewValueIsRequiredError("category.categoryId")
		}
		for _, point := range category.Points {
			if point == "" {
				return errs.NewValueIsRequiredError("category.points")
			}
			if _, dup := seen[point]; dup {
				return errs.NewValueIsInvalidErrorWithCause("catalog",
					fmt.Errorf("duplicate point name %q", point))
			}
			seen[point] = struct{}{}
		}
	}
	return nil
}

// TotalPoints returns the fixed number of checklist points in the catalog.
// Progress percentages are computed against this total so the metric stays
// stable as points are toggled to na and back.
func (c Catalog) TotalPoints() int {
	total := 0
	for _, category := range c.Categories {
		total += len(category.Points)
	}
	return total
}

// PointNames returns every canonical point name in catalog order.
func (c Catalog) PointNames() []string {
	names := make([]string, 0, c.TotalPoints())
	for _, category := range c.Categories {
		names = append(names, category.Points...)
	}
	return names
}

// LoadCatalog reads a catalog from a JSON file. Deployments use this to
// replace the built-in default without a rebuild.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, errs.NewValueIsInvalidErrorWithCause("catalog file", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, errs.NewValueIsInvalidErrorWithCause("catalog file", err)
	}

	if err := catalog.Validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

// DefaultCatalog returns the built-in production checklist: six categories,
// twenty-eight points.
func DefaultCatalog() Catalog {
	return Catalog{Categories: []Category{
		{
			ID:    "body",
			Title: "Body",
			Points: []string{
				"Exterior paint and finish",
				"Panel condition (dents, scratches)",
				"Door and hood alignment",
				"Bumper condition",
				"Glass and mirrors (cracks, chips)",
			},
		},
		{
			ID:    "interior",
			Title: "Interior",
			Points: []string{
				"Upholstery and seat condition",
				"Seat belt operation",
				"Dashboard and controls",
				"Air conditioning and heating",
				"Audio and navigation equipment",
			},
		},
		{
			ID:    "engine",
			Title: "Engine",
			Points: []string{
				"Engine start and idle",
				"Abnormal noises or vibrations",
				"Oil or coolant leaks",
				"Hose and belt condition",
				"Exhaust system (smoke, noises)",
			},
		},
		{
			ID:    "transmission",
			Title: "Transmission",
			Points: []string{
				"Gear shifting smoothness",
				"Transmission noises or vibrations",
				"Transmission fluid leaks",
				"Clutch response (manual gearboxes)",
			},
		},
		{
			ID:    "lights",
			Title: "Lights",
			Points: []string{
				"Headlights (high and low beam)",
				"Tail and brake lights",
				"Turn signals and hazard lights",
				"Interior and dashboard lights",
			},
		},
		{
			ID:    "fluids",
			Title: "Fluid Levels",
			Points: []string{
				"Engine oil level and condition",
				"Coolant level and condition",
				"Brake fluid level",
				"Power steering fluid level",
				"Windshield washer fluid level",
			},
		},
	}}
}
