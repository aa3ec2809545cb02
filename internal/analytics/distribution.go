package analytics

import (
	"sort"
	"strings"

	"github.com/2beens/gymtracker/internal/workouts"
	"github.com/2beens/gymtracker/pkg"
)

type CategoryShare struct {
	Category   string  `json:"category"`
	SetCount   int     `json:"setCount"`
	Percentage float64 `json:"percentage"`
}

// DistributionByCategory counts every set, completed or not, per exercise
// category. Equal counts keep the order in which categories were first seen.
func DistributionByCategory(ws []workouts.Workout) []CategoryShare {
	var shares []CategoryShare
	index := map[string]int{}
	total := 0

	for _, w := range ws {
		for _, e := range w.Exercises {
			category := strings.TrimSpace(e.Category)
			if category == "" {
				category = workouts.DefaultCategory
			}
			i, ok := index[category]
			if !ok {
				i = len(shares)
				index[category] = i
				shares = append(shares, CategoryShare{Category: category})
			}
			shares[i].SetCount += len(e.Sets)
			total += len(e.Sets)
		}
	}

	if total == 0 {
		return []CategoryShare{}
	}

	for i := range shares {
		shares[i].Percentage = pkg.Round(100 * float64(shares[i].SetCount) / float64(total))
	}
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].SetCount > shares[j].SetCount
	})
	return shares
}
