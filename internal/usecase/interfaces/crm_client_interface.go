package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/crm_client_interface_mock.go -package=mock_interfaces

import (
	"context"

	"clientportal/internal/domain/entities"
)

// ICRMClient pushes marketing leads to the external CRM and returns the CRM contact id.
type ICRMClient interface {
	CreateContact(ctx context.Context, lead entities.Lead) (string, error)
}
