package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

// RecalcQueue schedules re-derivation of a user's stored measurements.
type RecalcQueue interface {
	Enqueue(userID string)
}

type ProfileService struct {
	users  domain.UserRepository
	recalc RecalcQueue
	now    func() time.Time
}

func NewProfileService(users domain.UserRepository, recalc RecalcQueue) *ProfileService {
	return &ProfileService{
		users:  users,
		recalc: recalc,
		now:    time.Now,
	}
}

// ProfileView is the stored user together with the profile the calculator
// will see for it.
type ProfileView struct {
	User      *domain.User
	Effective domain.Profile
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{User: user, Effective: domain.NormalizeProfile(user, s.now())}, nil
}

// Update applies the profile changes. When the effective calculator profile
// changes, the user's stored measurements are queued for recalculation.
func (s *ProfileService) Update(ctx context.Context, userID string, upd domain.ProfileUpdate) (*ProfileView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	before := domain.NormalizeProfile(user, now)

	if err := user.ApplyProfile(upd); err != nil {
		return nil, err
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("profile service: update: %w", err)
	}

	after := domain.NormalizeProfile(user, now)
	if after != before {
		log.WithField("user_id", userID).Info("[PROFILE] calculator profile changed, scheduling recalculation")
		s.recalc.Enqueue(userID)
	}

	return &ProfileView{User: user, Effective: after}, nil
}
