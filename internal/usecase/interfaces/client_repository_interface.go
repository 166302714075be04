package interfaces

import (
	"context"

	"clientportal/internal/domain/entities"
)

// IPortalRepository persists client portals as one hash per portal plus a
// lower-cased email index.
type IPortalRepository interface {
	Create(ctx context.Context, p entities.ClientPortal) (entities.ClientPortal, error)
	GetByID(ctx context.Context, id string) (entities.ClientPortal, error)
	// GetIDByEmail returns "" when no portal is indexed for the email.
	GetIDByEmail(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]entities.ClientPortal, error)
	// Update writes the patch using portal field names (clientName, clientEmail, clientCompany).
	Update(ctx context.Context, id string, patch entities.ClientPatch) (bool, error)
	SetActive(ctx context.Context, id string, active bool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IManualClientRepository persists manual clients as one hash per client.
type IManualClientRepository interface {
	Create(ctx context.Context, m entities.ManualClient) (entities.ManualClient, error)
	GetByID(ctx context.Context, id string) (entities.ManualClient, error)
	GetIDByEmail(ctx context.Context, email string) (string, error)
	List(ctx context.Context) ([]entities.ManualClient, error)
	// Update writes the patch using manual client field names (name, email, company).
	Update(ctx context.Context, id string, patch entities.ClientPatch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ConvertToPortal writes the portal and removes the manual client in one
	// atomic batch.
	ConvertToPortal(ctx context.Context, m entities.ManualClient, portal entities.ClientPortal) (entities.ClientPortal, error)
}
