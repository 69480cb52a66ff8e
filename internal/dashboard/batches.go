package dashboard

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sfy-labs/easychain/internal/models"
)

const (
	// maxConcurrentDetailReads bounds the batch detail fan-out
	maxConcurrentDetailReads = 10
	// attachmentPlaceholder is stored on-chain when no document hash was
	// provided; upload and hashing are handled outside this service.
	attachmentPlaceholder = "N/A"
)

// SyncBatches rebuilds the wallet's batch view from the contract. The
// refresh is all-or-nothing: if the identifier read or any single detail
// read fails, the view is cleared and one error is returned. An empty
// identifier list is a successful empty view.
func (d *Dashboard) SyncBatches(ctx context.Context, wallet string) ([]*models.Batch, error) {
	d.setLoading(wallet, true)
	defer d.setLoading(wallet, false)

	ids, err := d.chain.GetBatchesByContributor(ctx, wallet)
	if err != nil {
		d.logger.Error("Failed to load batch identifiers ", "wallet ", wallet, "error ", err)
		d.replaceBatches(wallet, nil)
		return nil, fmt.Errorf("failed to load batches from chain: %w", err)
	}

	if len(ids) == 0 {
		empty := []*models.Batch{}
		d.replaceBatches(wallet, empty)
		return empty, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	sem := make(chan struct{}, maxConcurrentDetailReads)
	batches := make([]*models.Batch, 0, len(ids))

	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}

		go func(batchID uint64) {
			defer wg.Done()
			defer func() { <-sem }()

			batch, err := d.chain.GetBatchInfo(ctx, batchID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			batches = append(batches, batch)
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		d.logger.Error("Failed to load batch details ", "wallet ", wallet, "error ", firstErr)
		d.replaceBatches(wallet, nil)
		return nil, fmt.Errorf("failed to load batches from chain: %w", firstErr)
	}

	// Most recently created first
	sort.Slice(batches, func(i, j int) bool { return batches[i].BatchID > batches[j].BatchID })
	d.replaceBatches(wallet, batches)

	return batches, nil
}

// Batches returns the current view for a wallet and whether a refresh is
// in progress.
func (d *Dashboard) Batches(wallet string) ([]*models.Batch, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.sessions[wallet]
	if !ok {
		return nil, false
	}
	return s.batches, s.loading
}

// CreateBatch submits a new inscription. Name is validated before any
// chain call. On confirmation the batch view and the contributor record
// are refreshed together; a refresh failure is reported distinctly from a
// transaction failure.
func (d *Dashboard) CreateBatch(ctx context.Context, wallet string, form models.BatchForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return models.ErrNameRequired
	}

	attachment := form.AttachmentHash
	if attachment == "" {
		attachment = attachmentPlaceholder
	}

	err := d.chain.InitializeBatch(ctx, form.Name, form.Description, form.Date, form.Location, attachment)
	if err != nil {
		d.logger.Error("Failed to initialize batch ", "wallet ", wallet, "error ", err)
		if strings.Contains(strings.ToLower(err.Error()), "insufficient funds") {
			return models.ErrInsufficientFunds
		}
		return err
	}

	d.logger.Info("Batch initialized on-chain ", "wallet ", wallet, "name ", form.Name)

	var (
		wg                  sync.WaitGroup
		syncErr, contribErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, syncErr = d.SyncBatches(ctx, wallet)
	}()
	go func() {
		defer wg.Done()
		_, contribErr = d.chain.GetContributorInfo(ctx, wallet)
	}()
	wg.Wait()

	if syncErr != nil {
		return &models.RefreshError{Err: syncErr}
	}
	if contribErr != nil {
		return &models.RefreshError{Err: contribErr}
	}
	return nil
}

// ResetSession drops all view state held for a wallet. It replaces the
// original surface's full page reload on disconnect.
func (d *Dashboard) ResetSession(wallet string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.sessions, wallet)
}

func (d *Dashboard) setLoading(wallet string, loading bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[wallet]
	if !ok {
		s = &session{}
		d.sessions[wallet] = s
	}
	s.loading = loading
}

func (d *Dashboard) replaceBatches(wallet string, batches []*models.Batch) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[wallet]
	if !ok {
		s = &session{}
		d.sessions[wallet] = s
	}
	s.batches = batches
}
