package models

type Repository interface {
	AddCompany(*Company) error
	GetCompany(wallet string) (*Company, error)
	CompanyExists(wallet string) (bool, error)

	// ListPendingCompanies returns records awaiting on-chain activation.
	ListPendingCompanies() ([]*Company, error)
	// ListActivatedCompanies returns every record that has been activated
	// at least once, including currently deactivated ones.
	ListActivatedCompanies() ([]*Company, error)

	UpdateCompanyStatus(wallet, status string) error
	UpdateCompanyCredits(wallet string, credits uint64) error
	DeleteCompany(wallet string) error
}
