package profile

import (
	"context"
	"io"
	"log/slog"

	"github.com/frahmantamala/bragboard/internal"
	userDatamodel "github.com/frahmantamala/bragboard/internal/core/datamodel/user"
	"github.com/frahmantamala/bragboard/internal/session"
	"github.com/frahmantamala/bragboard/internal/user"
)

const MsgUpdated = "Profile updated successfully!"

type API interface {
	UpdateProfile(ctx context.Context, userID string, req userDatamodel.ProfileUpdateRequest) ([]byte, error)
	UploadAvatar(ctx context.Context, userID, filename string, content io.Reader) (string, error)
}

// Account is the session whose cached user follows profile edits.
type Account interface {
	Snapshot() session.Session
	UpdateUser(ctx context.Context, rec user.Record) (session.Session, error)
}

// Avatar is an image to upload before the profile is saved.
type Avatar struct {
	Filename string
	Content  io.Reader
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

// Current returns the signed-in user.
func (s *Service) Current() (*user.User, error) {
	sess := s.account.Snapshot()
	if sess.User == nil {
		return nil, internal.ErrNotAuthenticated
	}
	return sess.User, nil
}

// Update saves the profile, uploading the avatar first when one is given,
// and refreshes the session user from the backend's answer.
func (s *Service) Update(ctx context.Context, dto UpdateProfileDTO, avatar *Avatar) (*user.User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	current, err := s.Current()
	if err != nil {
		return nil, err
	}

	update := dto.ToProfileUpdate()
	if avatar != nil {
		avatarURL, err := s.api.UploadAvatar(ctx, current.ID, avatar.Filename, avatar.Content)
		if err != nil {
			return nil, err
		}
		if avatarURL != "" {
			update.AvatarURL = &avatarURL
		}
		s.logger.Info("avatar uploaded", "user_id", current.ID)
	}

	raw, err := s.api.UpdateProfile(ctx, current.ID, update.ToDataModel())
	if err != nil {
		return nil, err
	}

	sess, err := s.account.UpdateUser(ctx, s.updatedRecord(raw, *current, update))
	if err != nil {
		return nil, err
	}
	s.logger.Info("profile updated", "user_id", current.ID)
	return sess.User, nil
}

// updatedRecord prefers the backend's record. When the answer carries no
// user for the same id, the edit is applied to the cached user instead.
func (s *Service) updatedRecord(raw []byte, current user.User, update user.ProfileUpdate) user.Record {
	if len(raw) > 0 {
		rec, err := user.ParseRecord(raw)
		if err == nil && (rec.Backend.ID.String() == current.ID || rec.Local.ID.String() == current.ID) {
			return rec
		}
		if err != nil {
			s.logger.Warn("unreadable profile response, applying edit locally", "error", err)
		}
	}

	rec := current.Record()
	if update.FullName != nil {
		rec.FullName = update.FullName
	}
	if update.AvatarURL != nil {
		rec.AvatarURL = update.AvatarURL
	}
	if update.Department != nil {
		rec.Department = update.Department
	}
	return rec
}
