package pipeline

import (
	"github.com/dgallion1/donorscan/internal/names"
	"github.com/dgallion1/donorscan/internal/tiers"
)

// Result is the response of the tiered pipeline.
type Result struct {
	Names          []string           `json:"names"`
	NamesWithTiers []tiers.Assignment `json:"names_with_tiers"`
	TieredNames    *tiers.Map         `json:"tiered_names"`
}

// Assemble merges the candidate list and a segmentation into a Result.
// It deduplicates the global list, each tier, and the annotation records;
// a candidate that was never annotated is added with an empty tier.
func Assemble(candidates []string, seg tiers.Segmentation) *Result {
	tiered := seg.Tiers
	if tiered == nil {
		tiered = tiers.NewMap()
	}

	res := &Result{
		Names:          names.Dedupe(candidates),
		NamesWithTiers: names.Dedupe(seg.Assignments),
		TieredNames:    tiered.Dedupe(),
	}

	annotated := make(map[string]bool, len(res.NamesWithTiers))
	for _, a := range res.NamesWithTiers {
		annotated[a.Name] = true
	}
	for _, n := range res.Names {
		if !annotated[n] {
			res.NamesWithTiers = append(res.NamesWithTiers, tiers.Assignment{Name: n})
		}
	}
	return res
}
