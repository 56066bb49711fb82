// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/settleflow/settleflow/internal/models"
)

// ErrNotFound is wrapped by store implementations when the requested entity
// does not exist, so callers can tell a missing row from a storage failure.
var ErrNotFound = errors.New("not found")

// Store defines the interface for Settleflow's persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. ID and CreatedAt are assigned by
	// the store when unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group, including its member list.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// AddGroupMembers adds members to a group, skipping any already present.
	AddGroupMembers(ctx context.Context, groupID string, members []string) error

	// RemoveGroupMember removes a single member from a group.
	RemoveGroupMember(ctx context.Context, groupID, member string) error

	// DeleteGroup removes a group and, via cascade, its expenses and
	// settlements.
	DeleteGroup(ctx context.Context, groupID string) error

	// CreateExpense persists a new expense. ID and CreatedAt are assigned
	// by the store when unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpensesByGroup retrieves a group's expenses, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreateSettlement persists a recorded payment between two members.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// GetSettlement retrieves a settlement by ID.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByGroup retrieves a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// ListSettlementsByMember retrieves a group's settlements where the member
	// is either the payer or the recipient, newest first.
	ListSettlementsByMember(ctx context.Context, groupID, member string) ([]*models.Settlement, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns nil, nil when the
	// email is unknown.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns nil, nil when unknown.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
