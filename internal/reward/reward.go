package reward

import (
	rewardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/reward"
)

type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
}

// Offer is a reward as seen by one user: whether the balance covers it.
type Offer struct {
	Reward
	Affordable bool `json:"affordable"`
}

type CatalogResponse struct {
	Points int     `json:"points"`
	Offers []Offer `json:"offers"`
}

type RedeemResponse struct {
	Message string `json:"message"`
	Points  int    `json:"points"`
}

func FromDataModel(r rewardDatamodel.Reward) Reward {
	return Reward{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Cost:        r.Cost,
		Icon:        r.Icon,
		Category:    r.Category,
	}
}
