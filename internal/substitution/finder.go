package substitution

import (
	"context"
	"sort"

	"materio/internal/drawing"
	applog "materio/internal/log"
	"materio/models"
)

// maxAlternatives caps how many ranked candidates a search returns.
const maxAlternatives = 5

// Catalog is the read interface the finder needs from the material storage
// collaborator. ByName resolves a substring match and returns (nil, nil) when
// no material matches.
type Catalog interface {
	All(ctx context.Context) ([]models.Material, error)
	ByName(ctx context.Context, name string) (*models.Material, error)
}

// Alternative is a ranked candidate: the full material record annotated with
// its similarity score and the side-by-side comparison against the original.
type Alternative struct {
	models.Material
	SimilarityScore float64    `json:"similarity_score"`
	Comparison      Comparison `json:"comparison"`
}

// Finder orchestrates scoring and comparison over the catalog.
type Finder struct {
	catalog Catalog
}

func NewFinder(catalog Catalog) *Finder {
	return &Finder{catalog: catalog}
}

// FindAlternatives resolves the named material, scores every other catalog
// entry against it, and returns the top candidates in descending score order
// with comparisons attached. An unresolved name yields an empty list, not an
// error; only catalog access failures propagate.
func (f *Finder) FindAlternatives(ctx context.Context, materialName string, dims *drawing.Dimensions, required map[string]any) ([]Alternative, error) {
	original, err := f.catalog.ByName(ctx, materialName)
	if err != nil {
		return nil, err
	}
	if original == nil {
		applog.Debug(ctx, "material not found, no alternatives", "material", materialName)
		return []Alternative{}, nil
	}

	materials, err := f.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]Alternative, 0, len(materials))
	for _, candidate := range materials {
		if candidate.ID == original.ID {
			continue
		}
		ranked = append(ranked, Alternative{
			Material:        candidate,
			SimilarityScore: Score(*original, candidate, required),
		})
	}

	// Stable sort keeps catalog order among equal scores deterministic.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SimilarityScore > ranked[j].SimilarityScore
	})

	if len(ranked) > maxAlternatives {
		ranked = ranked[:maxAlternatives]
	}

	for i := range ranked {
		ranked[i].Comparison = Compare(*original, ranked[i].Material, dims)
	}

	applog.Debug(ctx, "alternatives ranked",
		"material", original.Name,
		"candidates", len(materials)-1,
		"returned", len(ranked),
	)
	return ranked, nil
}
