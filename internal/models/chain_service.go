package models

import "context"

// ChainService represents the supply-chain smart contract. Read methods
// query current contract state; write methods submit a single transaction
// and wait for its receipt. None of them retry.
type ChainService interface {
	SuperOwner(ctx context.Context) (string, error)
	Owner(ctx context.Context) (string, error)
	GetContributorInfo(ctx context.Context, wallet string) (*ContributorInfo, error)
	GetBatchesByContributor(ctx context.Context, wallet string) ([]uint64, error)
	GetBatchInfo(ctx context.Context, batchID uint64) (*Batch, error)

	AddContributor(ctx context.Context, wallet, name string) error
	DeactivateContributor(ctx context.Context, wallet string) error
	SetContributorCredits(ctx context.Context, wallet string, credits uint64) error
	InitializeBatch(ctx context.Context, name, description, date, location, attachment string) error
}
