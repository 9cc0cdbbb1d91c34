package paths

import "churn-backend/internal/model"

// pathCardRequest mirrors the planner's card entries. is_active is a pointer
// on purpose: a card only counts as unavailable when the flag is explicitly
// false, never when the planner omitted it.
type pathCardRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Bank     string `json:"bank"`
	IsActive *bool  `json:"is_active"`
}

type pathRequest struct {
	Cards []pathCardRequest `json:"cards"`
}

// validateRequest is the body of POST /paths/validate. The zeroth path is
// the recommended plan.
type validateRequest struct {
	Paths []pathRequest `json:"paths"`
}

// UnavailableCardPayload describes one discontinued card found in a path.
type UnavailableCardPayload struct {
	CardID              string `json:"card_id"`
	CardName            string `json:"card_name"`
	CardBank            string `json:"card_bank"`
	IsInRecommendedPath bool   `json:"is_in_recommended_path"`
	PathIndex           int    `json:"path_index"`
}

// validateResponse reports the three path-validation views in one shot.
type validateResponse struct {
	UnavailableInRecommended *UnavailableCardPayload           `json:"unavailable_in_recommended"`
	Unavailable              map[string]UnavailableCardPayload `json:"unavailable"`
	ValidPaths               []pathRequest                     `json:"valid_paths"`
}

func toModelPaths(reqs []pathRequest) []model.MultiCardPath {
	out := make([]model.MultiCardPath, 0, len(reqs))
	for _, req := range reqs {
		path := model.MultiCardPath{Cards: make([]model.PathCard, 0, len(req.Cards))}
		for _, card := range req.Cards {
			path.Cards = append(path.Cards, model.PathCard{
				ID:        card.ID,
				Name:      card.Name,
				Bank:      card.Bank,
				Available: card.IsActive,
			})
		}
		out = append(out, path)
	}
	return out
}

func toUnavailablePayload(info model.UnavailableCardInfo) UnavailableCardPayload {
	return UnavailableCardPayload{
		CardID:              info.CardID,
		CardName:            info.CardName,
		CardBank:            info.CardBank,
		IsInRecommendedPath: info.IsInRecommendedPath,
		PathIndex:           info.PathIndex,
	}
}
