package models

import "math/big"

// ContributorInfo is the on-chain contributor record for a wallet. It is
// recomputed on every read and never cached.
type ContributorInfo struct {
	Name    string   `json:"name"`
	Credits *big.Int `json:"credits"`
	Active  bool     `json:"active"`
}
