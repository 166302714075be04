package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"clientportal/internal/domain/entities"
	"clientportal/internal/domain/ids"
	"clientportal/internal/infrastructure/kvstore"
	"clientportal/internal/usecase/interfaces"
)

// ProposalKVRepository persists proposals in the key-value store.
//
// Layout:
//   - proposal:<id>            JSON document
//   - proposal:ids             set of ids
//   - proposal:email:<lower>   set of ids per client email
//   - proposal:<id>:views      view_count / last_viewed hash
//
// The document and both index memberships are written in one atomic batch on
// create and delete. Status updates are a read-modify-write of one document,
// so two concurrent writers on the same proposal still race (last write wins).
type ProposalKVRepository struct {
	store kvstore.Store
	now   func() time.Time
}

var _ interfaces.IProposalRepository = (*ProposalKVRepository)(nil)

func NewProposalKVRepository(store kvstore.Store) *ProposalKVRepository {
	return &ProposalKVRepository{store: store, now: time.Now}
}

func (r *ProposalKVRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	now := r.now().UTC()
	if p.ID == "" {
		p.ID = ids.NewProposalID(p.Client.Name, now)
	}
	if !ids.Valid(p.ID) {
		return entities.Proposal{}, ErrInvalidID
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Status = entities.ProposalStatusPending

	raw, err := json.Marshal(p)
	if err != nil {
		return entities.Proposal{}, err
	}
	ops := []kvstore.Op{
		kvstore.SetOp(entityKey(proposalPrefix, p.ID), string(raw), 0),
		kvstore.SAddOp(idsKey(proposalPrefix), p.ID),
	}
	if normalizeEmail(p.Client.Email) != "" {
		ops = append(ops, kvstore.SAddOp(emailKey(proposalPrefix, p.Client.Email), p.ID))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalKVRepository) load(ctx context.Context, id string) (entities.Proposal, bool, error) {
	p, ok, err := getJSON[entities.Proposal](ctx, r.store, proposalPrefix, id)
	if err != nil || !ok {
		return p, ok, err
	}
	last, count, viewed, err := loadViews(ctx, r.store, proposalPrefix, id)
	if err != nil {
		return entities.Proposal{}, false, err
	}
	if viewed {
		p.LastViewed, p.ViewCount = last, count
	}
	return p, true, nil
}

func (r *ProposalKVRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	p, _, err := r.load(ctx, id)
	return p, err
}

// List returns every proposal, newest first.
func (r *ProposalKVRepository) List(ctx context.Context) ([]entities.Proposal, error) {
	out, err := loadMembers(ctx, r.store, idsKey(proposalPrefix), r.load)
	if err != nil {
		return nil, err
	}
	sortProposals(out)
	return out, nil
}

// ListByEmail matches the client email case-insensitively.
func (r *ProposalKVRepository) ListByEmail(ctx context.Context, email string) ([]entities.Proposal, error) {
	if normalizeEmail(email) == "" {
		return []entities.Proposal{}, nil
	}
	all, err := loadMembers(ctx, r.store, emailKey(proposalPrefix, email), r.load)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, p := range all {
		if strings.EqualFold(strings.TrimSpace(p.Client.Email), strings.TrimSpace(email)) {
			out = append(out, p)
		}
	}
	sortProposals(out)
	return out, nil
}

func (r *ProposalKVRepository) Save(ctx context.Context, p entities.Proposal) error {
	if !ids.Valid(p.ID) {
		return ErrInvalidID
	}
	p.UpdatedAt = r.now().UTC()
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, entityKey(proposalPrefix, p.ID), string(raw), 0)
}

func (r *ProposalKVRepository) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (bool, error) {
	p, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	p.Status = status
	if err := r.Save(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProposalKVRepository) RecordView(ctx context.Context, id string, at time.Time) (bool, error) {
	_, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := recordView(ctx, r.store, proposalPrefix, id, at.UTC()); err != nil {
		return false, err
	}
	return true, nil
}

func (r *ProposalKVRepository) Delete(ctx context.Context, id string) (bool, error) {
	p, ok, err := r.load(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	ops := []kvstore.Op{
		kvstore.DelOp(entityKey(proposalPrefix, id)),
		kvstore.DelOp(viewsKey(proposalPrefix, id)),
		kvstore.SRemOp(idsKey(proposalPrefix), id),
	}
	if normalizeEmail(p.Client.Email) != "" {
		ops = append(ops, kvstore.SRemOp(emailKey(proposalPrefix, p.Client.Email), id))
	}
	if err := r.store.Atomic(ctx, ops...); err != nil {
		return false, err
	}
	return true, nil
}

func sortProposals(ps []entities.Proposal) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
}
