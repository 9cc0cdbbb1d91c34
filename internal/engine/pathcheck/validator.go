// Package pathcheck inspects externally planned multi-card acquisition paths
// and reports cards that have been discontinued since the plan was built. It
// is independent of the rest of the engine and has no clock dependency.
package pathcheck

import "churn-backend/internal/model"

// FindUnavailableInRecommendedPath scans the recommended plan (path index 0)
// in order and returns the first discontinued card, or nil when the path
// list is empty or every card in the recommended path is still available.
func FindUnavailableInRecommendedPath(paths []model.MultiCardPath) *model.UnavailableCardInfo {
	if len(paths) == 0 {
		return nil
	}
	for _, card := range paths[0].Cards {
		if card.Unavailable() {
			return &model.UnavailableCardInfo{
				CardID:              card.ID,
				CardName:            card.Name,
				CardBank:            card.Bank,
				IsInRecommendedPath: true,
				PathIndex:           0,
			}
		}
	}
	return nil
}

// CollectAllUnavailable scans every path in order and records the first
// occurrence of each distinct unavailable card id. Later sightings of the
// same card in other paths never overwrite the first.
func CollectAllUnavailable(paths []model.MultiCardPath) map[string]model.UnavailableCardInfo {
	found := make(map[string]model.UnavailableCardInfo)
	for i, path := range paths {
		for _, card := range path.Cards {
			if !card.Unavailable() {
				continue
			}
			if _, seen := found[card.ID]; seen {
				continue
			}
			found[card.ID] = model.UnavailableCardInfo{
				CardID:              card.ID,
				CardName:            card.Name,
				CardBank:            card.Bank,
				IsInRecommendedPath: i == 0,
				PathIndex:           i,
			}
		}
	}
	return found
}

// FilterValidPaths returns the paths whose every card is still available,
// preserving relative order. A path with no cards is vacuously valid.
func FilterValidPaths(paths []model.MultiCardPath) []model.MultiCardPath {
	valid := make([]model.MultiCardPath, 0, len(paths))
	for _, path := range paths {
		ok := true
		for _, card := range path.Cards {
			if card.Unavailable() {
				ok = false
				break
			}
		}
		if ok {
			valid = append(valid, path)
		}
	}
	return valid
}
