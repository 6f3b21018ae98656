// Package links implements CRUD and reordering over a user's links,
// enforcing ownership on every mutation.
package links

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/linkhub/internal/common"
	"github.com/dmitrijs2005/linkhub/internal/logging"
)

type Service struct {
	repo   Repository
	logger logging.Logger
}

func NewService(repo Repository, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With("module", "links"),
	}
}

// CreateLink appends a new visible link at the end of the owner's sequence:
// order = max existing order + 1, or 0 for the first link. Deleted siblings
// leave gaps, so the next order can exceed the link count.
func (s *Service) CreateLink(ctx context.Context, ownerID, title, url string) (*Link, error) {

	max, err := s.repo.MaxOrder(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "error computing max order", "error", err.Error())
		return nil, common.ErrorInternal
	}

	link := &Link{
		UserID:    ownerID,
		Title:     title,
		URL:       url,
		SortOrder: max + 1,
		Visible:   true,
	}

	link, err = s.repo.Create(ctx, link)
	if err != nil {
		s.logger.Error(ctx, "error creating link", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return link, nil
}

// ListLinks returns all of the owner's links sorted ascending by order.
func (s *Service) ListLinks(ctx context.Context, ownerID string) ([]*Link, error) {
	result, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "error listing links", "error", err.Error())
		return nil, common.ErrorInternal
	}
	return result, nil
}

// getOwned fetches a link and verifies it belongs to ownerID.
func (s *Service) getOwned(ctx context.Context, ownerID, linkID string) (*Link, error) {
	link, err := s.repo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if link.UserID != ownerID {
		return nil, common.ErrorForbidden
	}
	return link, nil
}

// UpdateLink applies a partial update: empty title or url keeps the prior
// value. UpdatedAt is stamped on success.
func (s *Service) UpdateLink(ctx context.Context, ownerID, linkID, title, url string) (*Link, error) {
	link, err := s.getOwned(ctx, ownerID, linkID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		link.Title = title
	}
	if url != "" {
		link.URL = url
	}
	link.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, link); err != nil {
		s.logger.Error(ctx, "error updating link", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return link, nil
}

// ToggleVisibility flips the link's visible flag.
func (s *Service) ToggleVisibility(ctx context.Context, ownerID, linkID string) (*Link, error) {
	link, err := s.getOwned(ctx, ownerID, linkID)
	if err != nil {
		return nil, err
	}

	link.Visible = !link.Visible
	link.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, link); err != nil {
		s.logger.Error(ctx, "error updating link", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return link, nil
}

// Reorder assigns order = index-in-list to each link in linkIDs and returns
// the links in their new sequence. The id set must exactly match the owner's
// existing links; any mismatch aborts before a single write is issued.
func (s *Service) Reorder(ctx context.Context, ownerID string, linkIDs []string) ([]*Link, error) {

	existing, err := s.repo.ListByUser(ctx, ownerID)
	if err != nil {
		s.logger.Error(ctx, "error listing links", "error", err.Error())
		return nil, common.ErrorInternal
	}

	if len(linkIDs) != len(existing) {
		return nil, common.ErrorForbidden
	}

	owned := make(map[string]bool, len(existing))
	for _, l := range existing {
		owned[l.ID] = true
	}
	for _, id := range linkIDs {
		if !owned[id] {
			return nil, common.ErrorForbidden
		}
		// Each id may appear once; owned doubles as a seen-marker.
		owned[id] = false
	}

	if err := s.repo.ReplaceOrders(ctx, ownerID, linkIDs, time.Now()); err != nil {
		if errors.Is(err, common.ErrorForbidden) {
			return nil, common.ErrorForbidden
		}
		s.logger.Error(ctx, "error replacing orders", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return s.ListLinks(ctx, ownerID)
}

// DeleteLink removes the link permanently. Sibling orders are not renumbered;
// gaps are fine because only relative order matters.
func (s *Service) DeleteLink(ctx context.Context, ownerID, linkID string) error {
	if _, err := s.getOwned(ctx, ownerID, linkID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, linkID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		s.logger.Error(ctx, "error deleting link", "error", err.Error())
		return common.ErrorInternal
	}

	return nil
}
