package reward

import (
	"bytes"
	"encoding/json"

	"github.com/frahmantamala/bragboard/internal/core/datamodel"
)

type Reward struct {
	ID          datamodel.ID `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Cost        int          `json:"cost"`
	Icon        string       `json:"icon"`
	Category    string       `json:"category"`
}

type RedeemRequest struct {
	UserID string `json:"user_id"`
}

// Balance is the points balance returned by a redemption, either as a bare
// number or wrapped in an object.
type Balance int

func (b *Balance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Points        *int `json:"points"`
			PointsBalance *int `json:"points_balance"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return err
		}
		switch {
		case wrapped.PointsBalance != nil:
			*b = Balance(*wrapped.PointsBalance)
		case wrapped.Points != nil:
			*b = Balance(*wrapped.Points)
		default:
			*b = 0
		}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = Balance(n)
	return nil
}
