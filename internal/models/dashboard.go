package models

import (
	"context"
	"errors"
)

// Validation and classification errors surfaced to dashboard users.
var (
	// ErrNameRequired rejects batch creation before any chain call.
	ErrNameRequired = errors.New("the name field is required")
	// ErrInsufficientFunds replaces the chain client's insufficient-funds
	// error text with a friendlier message.
	ErrInsufficientFunds = errors.New("insufficient credits")
)

// DashboardI is the application core behind both dashboard surfaces.
type DashboardI interface {
	// CheckAdminAccess reports whether the wallet is the contract's super
	// owner or owner. Any chain read failure denies access.
	CheckAdminAccess(ctx context.Context, wallet string) (bool, error)

	// ListCompanies returns the pending and activated mirror sets.
	ListCompanies(ctx context.Context) (pending, active []*Company, err error)
	// RegisterCompany creates a pending mirror record for a new
	// registration request.
	RegisterCompany(ctx context.Context, name, wallet, email string) (*Company, error)

	ActivateCompany(ctx context.Context, wallet string) error
	DeactivateCompany(ctx context.Context, wallet string) error
	ReactivateCompany(ctx context.Context, wallet string) error
	SetCompanyCredits(ctx context.Context, wallet string, credits uint64) error
	// DeleteCompany removes the mirror record only; it has no on-chain
	// effect and is allowed for pending and deactivated companies.
	DeleteCompany(ctx context.Context, wallet string) error

	// GetContributor reads the contributor record for a wallet from the
	// contract.
	GetContributor(ctx context.Context, wallet string) (*ContributorInfo, error)

	// SyncBatches rebuilds the wallet's batch view from the contract and
	// returns it. On any failure the view is cleared and the error is
	// returned.
	SyncBatches(ctx context.Context, wallet string) ([]*Batch, error)
	// Batches returns the current batch view for a wallet and whether a
	// refresh is in progress.
	Batches(wallet string) ([]*Batch, bool)
	// CreateBatch submits a new inscription and refreshes the wallet's
	// view. A *RefreshError means the transaction succeeded but the
	// refresh did not.
	CreateBatch(ctx context.Context, wallet string, form BatchForm) error

	// ResetSession drops all view state held for a wallet.
	ResetSession(wallet string)
}

// APIServer is the HTTP front of the dashboard.
type APIServer interface {
	Start()
	Shutdown() error
}

// RefreshError reports that an on-chain write was confirmed but the
// follow-up view refresh failed, so the local view may be stale.
type RefreshError struct {
	Err error
}

func (e *RefreshError) Error() string {
	return "transaction confirmed but refreshing data failed: " + e.Err.Error()
}

func (e *RefreshError) Unwrap() error { return e.Err }
