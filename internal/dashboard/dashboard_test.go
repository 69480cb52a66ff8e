package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"testing"

	"github.com/sfy-labs/easychain/internal/config"
	"github.com/sfy-labs/easychain/internal/models"
	"github.com/sfy-labs/easychain/pkg/logger"
)

const (
	walletA = "ab1234567890abcdef1234567890abcdef12345678cd"
	walletB = "cd1234567890abcdef1234567890abcdef12345678ef"
)

type fakeChain struct {
	mu    sync.Mutex
	calls []string

	superOwner    string
	owner         string
	superOwnerErr error
	ownerErr      error

	contributor    *models.ContributorInfo
	contributorErr error

	batchIDs     []uint64
	batchIDsErr  error
	batches      map[uint64]*models.Batch
	batchErrs    map[uint64]error
	initBatchErr error
	writeErr     error
}

func (f *fakeChain) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeChain) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeChain) SuperOwner(ctx context.Context) (string, error) {
	f.record("superOwner")
	return f.superOwner, f.superOwnerErr
}

func (f *fakeChain) Owner(ctx context.Context) (string, error) {
	f.record("owner")
	return f.owner, f.ownerErr
}

func (f *fakeChain) GetContributorInfo(ctx context.Context, wallet string) (*models.ContributorInfo, error) {
	f.record("getContributorInfo")
	if f.contributorErr != nil {
		return nil, f.contributorErr
	}
	return f.contributor, nil
}

func (f *fakeChain) GetBatchesByContributor(ctx context.Context, wallet string) ([]uint64, error) {
	f.record("getBatchesByContributor")
	return f.batchIDs, f.batchIDsErr
}

func (f *fakeChain) GetBatchInfo(ctx context.Context, batchID uint64) (*models.Batch, error) {
	f.record(fmt.Sprintf("getBatchInfo:%d", batchID))
	if err, ok := f.batchErrs[batchID]; ok {
		return nil, err
	}
	if b, ok := f.batches[batchID]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("unknown batch %d", batchID)
}

func (f *fakeChain) AddContributor(ctx context.Context, wallet, name string) error {
	f.record("addContributor:" + wallet + ":" + name)
	return f.writeErr
}

func (f *fakeChain) DeactivateContributor(ctx context.Context, wallet string) error {
	f.record("deactivateContributor:" + wallet)
	return f.writeErr
}

func (f *fakeChain) SetContributorCredits(ctx context.Context, wallet string, credits uint64) error {
	f.record(fmt.Sprintf("setContributorCredits:%s:%d", wallet, credits))
	return f.writeErr
}

func (f *fakeChain) InitializeBatch(ctx context.Context, name, description, date, location, attachment string) error {
	f.record("initializeBatch:" + name + ":" + attachment)
	return f.initBatchErr
}

type fakeRepo struct {
	mu        sync.Mutex
	companies map[string]*models.Company
}

func newFakeRepo(companies ...*models.Company) *fakeRepo {
	repo := &fakeRepo{companies: make(map[string]*models.Company)}
	for _, c := range companies {
		repo.companies[c.WalletAddress] = c
	}
	return repo
}

func (f *fakeRepo) AddCompany(c *models.Company) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.companies[c.WalletAddress] = c
	return nil
}

func (f *fakeRepo) GetCompany(wallet string) (*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.companies[wallet]; ok {
		return c, nil
	}
	return nil, errors.New("failed to get company: record not found")
}

func (f *fakeRepo) CompanyExists(wallet string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.companies[wallet]
	return ok, nil
}

func (f *fakeRepo) ListPendingCompanies() ([]*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Company
	for _, c := range f.companies {
		if c.Status == models.StatusPending {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActivatedCompanies() ([]*models.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Company
	for _, c := range f.companies {
		if c.Status != models.StatusPending {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateCompanyStatus(wallet, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.companies[wallet]
	if !ok {
		return errors.New("failed to get company: record not found")
	}
	c.Status = status
	return nil
}

func (f *fakeRepo) UpdateCompanyCredits(wallet string, credits uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.companies[wallet]
	if !ok {
		return errors.New("failed to get company: record not found")
	}
	c.Credits = credits
	return nil
}

func (f *fakeRepo) DeleteCompany(wallet string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.companies, wallet)
	return nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	admin   []string
	company []string
}

func (f *fakeNotifier) NotifyAdmin(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.admin = append(f.admin, message)
}

func (f *fakeNotifier) NotifyCompany(email, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.company = append(f.company, email+": "+message)
}

func newTestDashboard(t *testing.T, chain *fakeChain, repo *fakeRepo) models.DashboardI {
	t.Helper()
	log, err := logger.NewLogger(true)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	if chain.batches == nil {
		chain.batches = map[uint64]*models.Batch{}
	}
	if repo == nil {
		repo = newFakeRepo()
	}
	return NewDashboard(repo, chain, &fakeNotifier{}, log, &config.Config{})
}

func TestCheckAdminAccessDenied(t *testing.T) {
	chain := &fakeChain{superOwner: walletA, owner: walletA}
	d := newTestDashboard(t, chain, nil)

	allowed, err := d.CheckAdminAccess(context.Background(), walletB)
	if err != nil {
		t.Fatalf("check access: %v", err)
	}
	if allowed {
		t.Fatal("expected access denied for unknown wallet")
	}
}

func TestCheckAdminAccessCaseInsensitive(t *testing.T) {
	chain := &fakeChain{superOwner: strings.ToUpper(walletA), owner: walletB}
	d := newTestDashboard(t, chain, nil)

	allowed, err := d.CheckAdminAccess(context.Background(), walletA)
	if err != nil {
		t.Fatalf("check access: %v", err)
	}
	if !allowed {
		t.Fatal("expected access granted regardless of address case")
	}
}

func TestCheckAdminAccessOwnerMatch(t *testing.T) {
	chain := &fakeChain{superOwner: walletA, owner: walletB}
	d := newTestDashboard(t, chain, nil)

	allowed, err := d.CheckAdminAccess(context.Background(), walletB)
	if err != nil {
		t.Fatalf("check access: %v", err)
	}
	if !allowed {
		t.Fatal("expected owner wallet to be granted access")
	}
}

func TestCheckAdminAccessFailsClosed(t *testing.T) {
	chain := &fakeChain{superOwner: walletA, ownerErr: errors.New("rpc down")}
	d := newTestDashboard(t, chain, nil)

	allowed, err := d.CheckAdminAccess(context.Background(), walletA)
	if err == nil {
		t.Fatal("expected error on chain read failure")
	}
	if allowed {
		t.Fatal("expected access denied when a read fails")
	}
}

func TestActivateCompany(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusPending})
	chain := &fakeChain{}
	d := newTestDashboard(t, chain, repo)

	if err := d.ActivateCompany(context.Background(), walletA); err != nil {
		t.Fatalf("activate: %v", err)
	}

	c, _ := repo.GetCompany(walletA)
	if c.Status != models.StatusActive {
		t.Fatalf("expected mirrored status active, got %q", c.Status)
	}
	if chain.calls[0] != "addContributor:"+walletA+":Rossi" {
		t.Fatalf("unexpected chain call %q", chain.calls[0])
	}
}

func TestActivateCompanyRejectsWrongStatus(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusActive})
	chain := &fakeChain{}
	d := newTestDashboard(t, chain, repo)

	if err := d.ActivateCompany(context.Background(), walletA); err == nil {
		t.Fatal("expected error activating a non-pending company")
	}
	if chain.callCount() != 0 {
		t.Fatal("no chain call expected for rejected action")
	}
}

func TestDeactivateThenReactivate(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusActive})
	chain := &fakeChain{}
	d := newTestDashboard(t, chain, repo)

	if err := d.DeactivateCompany(context.Background(), walletA); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	c, _ := repo.GetCompany(walletA)
	if c.Status != models.StatusDeactivated {
		t.Fatalf("expected deactivated, got %q", c.Status)
	}

	if err := d.ReactivateCompany(context.Background(), walletA); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	c, _ = repo.GetCompany(walletA)
	if c.Status != models.StatusActive {
		t.Fatalf("expected active after reactivation, got %q", c.Status)
	}
}

func TestMirrorNotUpdatedOnChainFailure(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusPending})
	chain := &fakeChain{writeErr: errors.New("execution reverted")}
	d := newTestDashboard(t, chain, repo)

	if err := d.ActivateCompany(context.Background(), walletA); err == nil {
		t.Fatal("expected chain write error")
	}
	c, _ := repo.GetCompany(walletA)
	if c.Status != models.StatusPending {
		t.Fatalf("mirror must stay pending after failed write, got %q", c.Status)
	}
}

func TestSetCompanyCredits(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusActive})
	chain := &fakeChain{}
	d := newTestDashboard(t, chain, repo)

	if err := d.SetCompanyCredits(context.Background(), walletA, 75); err != nil {
		t.Fatalf("set credits: %v", err)
	}
	c, _ := repo.GetCompany(walletA)
	if c.Credits != 75 {
		t.Fatalf("expected mirrored credits 75, got %d", c.Credits)
	}
}

func TestSetCompanyCreditsRejectsPending(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusPending})
	chain := &fakeChain{}
	d := newTestDashboard(t, chain, repo)

	if err := d.SetCompanyCredits(context.Background(), walletA, 75); err == nil {
		t.Fatal("expected error setting credits on pending company")
	}
	if chain.callCount() != 0 {
		t.Fatal("no chain call expected for rejected action")
	}
}

func TestDeleteCompanyRejectsActive(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusActive})
	d := newTestDashboard(t, &fakeChain{}, repo)

	if err := d.DeleteCompany(context.Background(), walletA); err == nil {
		t.Fatal("expected error deleting an active company")
	}
}

func TestDeleteCompanyPending(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Rossi", WalletAddress: walletA, Status: models.StatusPending})
	d := newTestDashboard(t, &fakeChain{}, repo)

	if err := d.DeleteCompany(context.Background(), walletA); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if exists, _ := repo.CompanyExists(walletA); exists {
		t.Fatal("expected record removed")
	}
}

func TestRegisterCompany(t *testing.T) {
	repo := newFakeRepo()
	d := newTestDashboard(t, &fakeChain{}, repo)

	c, err := d.RegisterCompany(context.Background(), "Cantina Verdi", walletA, "info@verdi.example")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if c.Status != models.StatusPending {
		t.Fatalf("expected pending status, got %q", c.Status)
	}
	if c.Credits != DefaultCredits {
		t.Fatalf("expected default credits %d, got %d", DefaultCredits, c.Credits)
	}
	if c.ID == "" {
		t.Fatal("expected generated record id")
	}
}

func TestRegisterCompanyRejectsDuplicate(t *testing.T) {
	repo := newFakeRepo(&models.Company{CompanyName: "Verdi", WalletAddress: walletA, Status: models.StatusPending})
	d := newTestDashboard(t, &fakeChain{}, repo)

	if _, err := d.RegisterCompany(context.Background(), "Verdi", walletA, ""); err == nil {
		t.Fatal("expected duplicate wallet rejection")
	}
}

func TestRegisterCompanyRejectsBadAddress(t *testing.T) {
	d := newTestDashboard(t, &fakeChain{}, newFakeRepo())

	if _, err := d.RegisterCompany(context.Background(), "Verdi", "not-an-address", ""); err == nil {
		t.Fatal("expected invalid address rejection")
	}
}

func TestGetContributorPassesThrough(t *testing.T) {
	chain := &fakeChain{contributor: &models.ContributorInfo{Name: "Rossi", Credits: big.NewInt(40), Active: true}}
	d := newTestDashboard(t, chain, nil)

	info, err := d.GetContributor(context.Background(), walletA)
	if err != nil {
		t.Fatalf("get contributor: %v", err)
	}
	if info.Name != "Rossi" || !info.Active {
		t.Fatalf("unexpected contributor %+v", info)
	}
}
