// Package profile provides the read-only public projection of a user's page.
// It is the only surface that requires no token and it never exposes the
// password hash, the email, or hidden links.
package profile

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/server/links"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
)

// Profile is the public view of a user: no id, no email, no credentials.
type Profile struct {
	Username string        `json:"username"`
	Bio      string        `json:"bio"`
	Links    []*links.Link `json:"links"`
}

type Service struct {
	users users.Repository
	links links.Repository
}

func NewService(userRepo users.Repository, linkRepo links.Repository) *Service {
	return &Service{users: userRepo, links: linkRepo}
}

// GetPublicProfile resolves username to its public page: bio plus the visible
// links sorted ascending by order.
func (s *Service) GetPublicProfile(ctx context.Context, username string) (*Profile, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	visible, err := s.links.ListVisibleByUser(ctx, user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &Profile{
		Username: user.Username,
		Bio:      user.Bio,
		Links:    visible,
	}, nil
}
