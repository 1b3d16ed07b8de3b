// Package access decides whether a caller may act on a name, using the
// ownership and admin oracles provided by the host.
package access

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	statuserrors "github.com/status-im/status-names/errors"
)

//go:generate mockgen -package=mock_access -source=access.go -destination=mocks/access_mock.go

// AdminOracle tells whether an identity is a contract admin.
type AdminOracle interface {
	IsAdmin(ctx context.Context, identity string) (bool, error)
}

// OwnershipOracle tells who owns a name.
type OwnershipOracle interface {
	OwnerOf(ctx context.Context, name string) (owner string, found bool, err error)
}

// Role is the capacity in which a caller acts on a name.
type Role int

const (
	// RoleOwner callers own the name and must prove what they bind.
	RoleOwner Role = iota + 1
	// RoleAdmin callers skip every proof.
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "owner"
	case RoleAdmin:
		return "admin"
	}
	return "none"
}

// UnauthorizedError is returned when the caller neither owns name nor is an admin.
type UnauthorizedError struct {
	Sender string
	Name   string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized: %s is neither owner of %q nor admin", e.Sender, e.Name)
}

// Code implements errors.Coded.
func (e *UnauthorizedError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeUnauthorized
}

// Authorize returns the role of sender for name. Admins are recognised
// first, so an admin that also owns the name acts as admin.
func Authorize(ctx context.Context, admins AdminOracle, owners OwnershipOracle, sender, name string) (Role, error) {
	admin, err := admins.IsAdmin(ctx, sender)
	if err != nil {
		return 0, errors.Wrap(err, "admin oracle")
	}
	if admin {
		return RoleAdmin, nil
	}

	owner, found, err := owners.OwnerOf(ctx, name)
	if err != nil {
		return 0, errors.Wrap(err, "ownership oracle")
	}
	if found && owner == sender {
		return RoleOwner, nil
	}
	return 0, &UnauthorizedError{Sender: sender, Name: name}
}
