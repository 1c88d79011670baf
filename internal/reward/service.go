package reward

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/bragboard/internal"
	rewardDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/reward"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/user"
)

type API interface {
	ListRewards(ctx context.Context) ([]rewardDatamodel.Reward, error)
	RedeemReward(ctx context.Context, rewardID, userID string) (int, error)
}

// Account is the signed-in user's session, whose cached balance follows
// each redemption.
type Account interface {
	Snapshot() session.Session
	UpdateUser(ctx context.Context, rec user.Record) (session.Session, error)
}

type Service struct {
	api     API
	account Account
	logger  *slog.Logger
}

func NewService(api API, account Account, logger *slog.Logger) *Service {
	return &Service{
		api:     api,
		account: account,
		logger:  logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Reward, error) {
	data, err := s.api.ListRewards(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Reward, 0, len(data))
	for _, d := range data {
		out = append(out, FromDataModel(d))
	}
	return out, nil
}

// Catalog lists the rewards against the session's current balance.
func (s *Service) Catalog(ctx context.Context) (CatalogResponse, error) {
	rewards, err := s.List(ctx)
	if err != nil {
		return CatalogResponse{}, err
	}
	points := s.account.Snapshot().PointsBalance()
	resp := CatalogResponse{Points: points, Offers: make([]Offer, 0, len(rewards))}
	for _, r := range rewards {
		resp.Offers = append(resp.Offers, Offer{Reward: r, Affordable: points >= r.Cost})
	}
	return resp, nil
}

// Redeem spends points on a reward and stores the balance the backend
// reports on the session user.
func (s *Service) Redeem(ctx context.Context, rewardID string) (RedeemResponse, error) {
	rewards, err := s.List(ctx)
	if err != nil {
		return RedeemResponse{}, err
	}
	var target *Reward
	for i := range rewards {
		if rewards[i].ID == rewardID {
			target = &rewards[i]
			break
		}
	}
	if target == nil {
		return RedeemResponse{}, internal.ErrRewardNotFound
	}

	sess := s.account.Snapshot()
	if sess.User == nil {
		return RedeemResponse{}, internal.ErrNotAuthenticated
	}
	if sess.PointsBalance() < target.Cost {
		return RedeemResponse{}, internal.NewValidationFieldError("points", "Insufficient points!", internal.ErrCodeInsufficientPoints)
	}

	balance, err := s.api.RedeemReward(ctx, target.ID, sess.UserID())
	if err != nil {
		return RedeemResponse{}, err
	}

	rec := sess.User.Record()
	rec.Points = &balance
	if _, err := s.account.UpdateUser(ctx, rec); err != nil {
		return RedeemResponse{}, err
	}

	s.logger.Info("reward redeemed",
		"reward_id", target.ID,
		"user_id", sess.UserID(),
		"cost", target.Cost,
		"balance", balance)
	return RedeemResponse{Message: "Successfully redeemed: " + target.Title + "!", Points: balance}, nil
}
