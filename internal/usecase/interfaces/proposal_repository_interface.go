package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/proposal_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"clientportal/internal/domain/entities"
)

// IProposalRepository persists proposals. Reads of a missing id return a zero
// Proposal (ID == "") and no error.
type IProposalRepository interface {
	// Create assigns an id when p.ID is empty, stamps CreatedAt and the pending
	// status and writes the entity together with its id and email indexes.
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Proposal, error)
	// Save overwrites the whole document (last write wins).
	Save(ctx context.Context, p entities.Proposal) error
	// UpdateStatus returns false when the id does not exist.
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (bool, error)
	// RecordView bumps ViewCount and sets LastViewed without touching the
	// rest of the document. It returns false when the id does not exist.
	RecordView(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
