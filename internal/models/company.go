package models

// Company statuses as stored in the off-chain mirror. The chain is the
// source of truth; these values only exist for listing and search.
const (
	StatusActive      = "active"
	StatusPending     = "pending"
	StatusDeactivated = "deactivated"
)

// Company represents a company record in the off-chain mirror.
type Company struct {
	// ID is the unique identifier of the mirror record.
	ID string `json:"id" gorm:"column:id;primaryKey"`
	// CompanyName is the display name of the company.
	CompanyName string `json:"companyName" gorm:"column:company_name;not null"`
	// WalletAddress is the company wallet, stored lowercase without 0x prefix.
	WalletAddress string `json:"walletAddress" gorm:"column:wallet_address;unique;not null"`
	// Status is one of active, pending, deactivated.
	Status string `json:"status" gorm:"column:status;index;not null"`
	// Credits mirrors the on-chain credit balance at the last confirmed update.
	Credits uint64 `json:"credits" gorm:"column:credits"`
	// ContactEmail is the optional contact address used for status notifications.
	ContactEmail string `json:"contactEmail,omitempty" gorm:"column:contact_email"`
	// CreatedAt is the unix timestamp of the registration request.
	CreatedAt int64 `json:"created_at" gorm:"column:created_at;index"`
}

// MergeCompanies combines the pending and active mirror sets into one
// collection, pending first. Records without a status are tagged: pending
// set records become pending, active set records default to active (a
// record in the active set may already carry a deactivated status).
func MergeCompanies(pending, active []*Company) []*Company {
	merged := make([]*Company, 0, len(pending)+len(active))
	for _, c := range pending {
		if c.Status == "" {
			c.Status = StatusPending
		}
		merged = append(merged, c)
	}
	for _, c := range active {
		if c.Status == "" {
			c.Status = StatusActive
		}
		merged = append(merged, c)
	}
	return merged
}
