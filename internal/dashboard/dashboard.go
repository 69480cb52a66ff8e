package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sfy-labs/easychain/internal/config"
	"github.com/sfy-labs/easychain/internal/models"
	"github.com/sfy-labs/easychain/pkg/logger"
	"github.com/sfy-labs/easychain/pkg/validation"
)

// DefaultCredits is the credit balance suggested for a newly registered
// company until an admin sets one on-chain.
const DefaultCredits = 50

// Dashboard is the main struct for the EasyChain dashboard application.
// It contains all the necessary components and serves all business logic
// behind the admin and company surfaces.
type Dashboard struct {
	logger *logger.Logger
	config *config.Config

	repo        models.Repository
	chain       models.ChainService
	notificator models.NotificationService

	// Per-wallet view state for the company surface. Guarded by mu; the
	// last completed refresh wins, matching the single-writer view model.
	mu       sync.RWMutex
	sessions map[string]*session
}

// session holds the batch view for one connected wallet.
type session struct {
	batches []*models.Batch
	loading bool
}

// NewDashboard creates a new Dashboard instance
func NewDashboard(
	repo models.Repository,
	chain models.ChainService,
	notificator models.NotificationService,
	logger *logger.Logger,
	config *config.Config,
) models.DashboardI {
	return &Dashboard{
		repo:        repo,
		chain:       chain,
		notificator: notificator,
		logger:      logger,
		config:      config,
		sessions:    make(map[string]*session),
	}
}

// CheckAdminAccess grants access iff the wallet matches the contract's
// super owner or owner. The two reads run in parallel; any failure denies
// access (fail closed), with no retry.
func (d *Dashboard) CheckAdminAccess(ctx context.Context, wallet string) (bool, error) {
	var (
		superOwner, owner       string
		superOwnerErr, ownerErr error
		wg                      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		superOwner, superOwnerErr = d.chain.SuperOwner(ctx)
	}()
	go func() {
		defer wg.Done()
		owner, ownerErr = d.chain.Owner(ctx)
	}()
	wg.Wait()

	if superOwnerErr != nil {
		d.logger.Error("Failed to read super owner ", "error ", superOwnerErr)
		return false, superOwnerErr
	}
	if ownerErr != nil {
		d.logger.Error("Failed to read owner ", "error ", ownerErr)
		return false, ownerErr
	}

	isAdmin := validation.SameAddress(wallet, superOwner) || validation.SameAddress(wallet, owner)
	return isAdmin, nil
}

// ListCompanies returns the pending and activated mirror sets.
func (d *Dashboard) ListCompanies(ctx context.Context) ([]*models.Company, []*models.Company, error) {
	pending, err := d.repo.ListPendingCompanies()
	if err != nil {
		d.logger.Error("Failed to list pending companies ", "error ", err)
		return nil, nil, err
	}
	active, err := d.repo.ListActivatedCompanies()
	if err != nil {
		d.logger.Error("Failed to list activated companies ", "error ", err)
		return nil, nil, err
	}
	return pending, active, nil
}

// RegisterCompany creates a pending mirror record for a registration
// request and notifies the admin channel.
func (d *Dashboard) RegisterCompany(ctx context.Context, name, wallet, email string) (*models.Company, error) {
	normalized, err := validation.ValidateAndNormalizeAddress(wallet)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}

	exists, err := d.repo.CompanyExists(normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("a company with wallet %s is already registered", normalized)
	}

	company := &models.Company{
		ID:            uuid.NewString(),
		CompanyName:   name,
		WalletAddress: normalized,
		Status:        models.StatusPending,
		Credits:       DefaultCredits,
		ContactEmail:  email,
		CreatedAt:     time.Now().Unix(),
	}
	if err := d.repo.AddCompany(company); err != nil {
		return nil, err
	}

	d.logger.Info("Company registration request received ", "name ", name, "wallet ", normalized)
	go d.notificator.NotifyAdmin(fmt.Sprintf("New registration request: %s (%s)", name, normalized))

	return company, nil
}

// ActivateCompany activates a pending company on-chain and mirrors the
// result. The mirror update runs only after the transaction is confirmed.
func (d *Dashboard) ActivateCompany(ctx context.Context, wallet string) error {
	return d.changeStatus(ctx, wallet, models.StatusPending, models.StatusActive, "activated")
}

// DeactivateCompany deactivates an active company on-chain and mirrors the
// result.
func (d *Dashboard) DeactivateCompany(ctx context.Context, wallet string) error {
	company, err := d.repo.GetCompany(validation.NormalizeAddress(wallet))
	if err != nil {
		return err
	}
	if company.Status != models.StatusActive {
		return fmt.Errorf("company %s is not active", company.CompanyName)
	}

	if err := d.chain.DeactivateContributor(ctx, company.WalletAddress); err != nil {
		d.logger.Error("Failed to deactivate contributor ", "wallet ", company.WalletAddress, "error ", err)
		return err
	}
	if err := d.repo.UpdateCompanyStatus(company.WalletAddress, models.StatusDeactivated); err != nil {
		return err
	}

	d.notifyStatusChange(company, "deactivated")
	return nil
}

// ReactivateCompany re-adds a deactivated contributor on-chain.
func (d *Dashboard) ReactivateCompany(ctx context.Context, wallet string) error {
	return d.changeStatus(ctx, wallet, models.StatusDeactivated, models.StatusActive, "reactivated")
}

// changeStatus performs the addContributor path shared by activation and
// reactivation: same chain call, different required starting status.
func (d *Dashboard) changeStatus(ctx context.Context, wallet, from, to, verb string) error {
	company, err := d.repo.GetCompany(validation.NormalizeAddress(wallet))
	if err != nil {
		return err
	}
	if company.Status != from {
		return fmt.Errorf("company %s is not %s", company.CompanyName, from)
	}

	if err := d.chain.AddContributor(ctx, company.WalletAddress, company.CompanyName); err != nil {
		d.logger.Error("Failed to add contributor ", "wallet ", company.WalletAddress, "error ", err)
		return err
	}
	if err := d.repo.UpdateCompanyStatus(company.WalletAddress, to); err != nil {
		return err
	}

	d.notifyStatusChange(company, verb)
	return nil
}

// SetCompanyCredits sets the contributor's credit balance on-chain and
// mirrors the new value. Credits are unsigned end to end; a negative value
// is unrepresentable past the API boundary.
func (d *Dashboard) SetCompanyCredits(ctx context.Context, wallet string, credits uint64) error {
	company, err := d.repo.GetCompany(validation.NormalizeAddress(wallet))
	if err != nil {
		return err
	}
	if company.Status == models.StatusPending {
		return fmt.Errorf("company %s is pending activation, cannot set credits", company.CompanyName)
	}

	if err := d.chain.SetContributorCredits(ctx, company.WalletAddress, credits); err != nil {
		d.logger.Error("Failed to set contributor credits ", "wallet ", company.WalletAddress, "error ", err)
		return err
	}
	return d.repo.UpdateCompanyCredits(company.WalletAddress, credits)
}

// DeleteCompany removes the mirror record only. Allowed while the company
// is pending or deactivated; an active company must be deactivated first.
func (d *Dashboard) DeleteCompany(ctx context.Context, wallet string) error {
	company, err := d.repo.GetCompany(validation.NormalizeAddress(wallet))
	if err != nil {
		return err
	}
	if company.Status == models.StatusActive {
		return fmt.Errorf("company %s is active and cannot be deleted", company.CompanyName)
	}

	d.logger.Info("Deleting company record ", "name ", company.CompanyName, "wallet ", company.WalletAddress)
	return d.repo.DeleteCompany(company.WalletAddress)
}

// GetContributor reads the contributor record for a wallet. The chain is
// queried on every call; nothing is cached.
func (d *Dashboard) GetContributor(ctx context.Context, wallet string) (*models.ContributorInfo, error) {
	info, err := d.chain.GetContributorInfo(ctx, wallet)
	if err != nil {
		d.logger.Error("Failed to get contributor info ", "wallet ", wallet, "error ", err)
		return nil, err
	}
	return info, nil
}

func (d *Dashboard) notifyStatusChange(company *models.Company, verb string) {
	if company.ContactEmail == "" {
		return
	}
	go d.notificator.NotifyCompany(company.ContactEmail,
		fmt.Sprintf("Your company %s has been %s.", company.CompanyName, verb))
}
