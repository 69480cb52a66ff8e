package models

// Batch is a read-only projection of one on-chain traceability inscription.
// Batches are never persisted off-chain; every listing is rebuilt from the
// contract.
type Batch struct {
	// BatchID is the chain-assigned identifier, increasing by creation order.
	BatchID uint64 `json:"batchId"`
	// Owner is the contributor wallet that created the batch.
	Owner string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Date is free text as written by the contributor.
	Date     string `json:"date"`
	Location string `json:"location"`
	// IsClosed reports whether the inscription has been closed on-chain.
	IsClosed bool `json:"isClosed"`
}

// BatchForm carries the user input for a new inscription.
type BatchForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	// AttachmentHash is the hash of an optional uploaded document. Upload
	// and hashing happen outside this service; an empty value is submitted
	// as the "N/A" placeholder.
	AttachmentHash string `json:"attachmentHash"`
}
