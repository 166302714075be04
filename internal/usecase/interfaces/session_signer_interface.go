package interfaces

//go:generate mockgen -source=$GOFILE -destination=mocks/session_signer_interface_mock.go -package=mock_interfaces

import "clientportal/internal/domain/entities"

// ISessionSigner issues and validates the staff session token kept in the
// admin-auth cookie.
type ISessionSigner interface {
	Sign(role entities.Role) (string, entities.Session, error)
	Verify(token string) (entities.Session, error)
}
