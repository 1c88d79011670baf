package leaderboard

import "github.com/frahmantamala/bragboard/internal/core/datamodel"

// Entry is one leaderboard row. The backend has shipped several spellings
// over time, so every field is optional.
type Entry struct {
	ID            datamodel.ID `json:"id"`
	FullName      *string      `json:"full_name,omitempty"`
	Name          *string      `json:"name,omitempty"`
	AvatarURL     *string      `json:"avatar_url,omitempty"`
	ShoutoutCount *int         `json:"shoutout_count,omitempty"`
	CheerCount    *int         `json:"cheer_count,omitempty"`
	Cheers        *int         `json:"cheers,omitempty"`
	Points        *int         `json:"points,omitempty"`
	Rank          *int         `json:"rank,omitempty"`
	Badge         *string      `json:"badge,omitempty"`
}
