package leaderboard

import (
	"strconv"

	leaderboardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/leaderboard"
)

const DefaultBadge = "none"

type Entry struct {
	UserID        string  `json:"userId"`
	FullName      string  `json:"fullName"`
	AvatarURL     *string `json:"avatarUrl"`
	ShoutoutCount int     `json:"shoutoutCount"`
	CheerCount    int     `json:"cheerCount"`
	Points        int     `json:"points"`
	Rank          int     `json:"rank"`
	Badge         string  `json:"badge"`
}

// FromDataModel translates the row at position idx of the backend list.
// A row without an id is keyed by its position and one without a rank is
// ranked by it.
func FromDataModel(e leaderboardDatamodel.Entry, idx int) Entry {
	out := Entry{
		UserID:        e.ID.String(),
		AvatarURL:     e.AvatarURL,
		ShoutoutCount: intOr(e.ShoutoutCount, 0),
		CheerCount:    intOr(e.CheerCount, intOr(e.Cheers, 0)),
		Points:        intOr(e.Points, 0),
		Rank:          intOr(e.Rank, idx+1),
		Badge:         DefaultBadge,
	}

	if out.UserID == "" {
		out.UserID = strconv.Itoa(idx)
	}
	switch {
	case e.FullName != nil:
		out.FullName = *e.FullName
	case e.Name != nil:
		out.FullName = *e.Name
	}
	if e.Badge != nil {
		out.Badge = *e.Badge
	}
	return out
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
