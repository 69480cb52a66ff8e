package models

import "testing"

func TestMergeCompaniesTagsStatuses(t *testing.T) {
	pending := []*Company{{CompanyName: "A"}}
	active := []*Company{{CompanyName: "B"}, {CompanyName: "C", Status: StatusDeactivated}}

	merged := MergeCompanies(pending, active)
	if len(merged) != 3 {
		t.Fatalf("expected 3 companies, got %d", len(merged))
	}
	if merged[0].Status != StatusPending {
		t.Fatalf("expected pending tag, got %q", merged[0].Status)
	}
	if merged[1].Status != StatusActive {
		t.Fatalf("expected active default, got %q", merged[1].Status)
	}
	if merged[2].Status != StatusDeactivated {
		t.Fatalf("expected deactivated status preserved, got %q", merged[2].Status)
	}
}

func TestFilterCompaniesSearchAndStatus(t *testing.T) {
	pending := []*Company{{CompanyName: "A"}}
	active := []*Company{{CompanyName: "B", Status: StatusDeactivated}}
	merged := MergeCompanies(pending, active)

	filtered := FilterCompanies(merged, "a", FilterAll)
	if len(filtered) != 1 || filtered[0].CompanyName != "A" {
		t.Fatalf("expected only A, got %v", filtered)
	}
}

func TestFilterCompaniesExactStatus(t *testing.T) {
	companies := []*Company{
		{CompanyName: "Uno", Status: StatusActive},
		{CompanyName: "Due", Status: StatusPending},
		{CompanyName: "Tre", Status: StatusActive},
	}

	filtered := FilterCompanies(companies, "", StatusActive)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 active companies, got %d", len(filtered))
	}
	if filtered[0].CompanyName != "Uno" || filtered[1].CompanyName != "Tre" {
		t.Fatalf("expected order preserved, got %v, %v", filtered[0].CompanyName, filtered[1].CompanyName)
	}
}

func TestFilterCompaniesCaseInsensitive(t *testing.T) {
	companies := []*Company{{CompanyName: "Cantina Rossi", Status: StatusActive}}

	filtered := FilterCompanies(companies, "ROSSI", FilterAll)
	if len(filtered) != 1 {
		t.Fatalf("expected case-insensitive match, got %d results", len(filtered))
	}
}

func TestFilterCompaniesDoesNotMutateBase(t *testing.T) {
	companies := []*Company{
		{CompanyName: "Uno", Status: StatusActive},
		{CompanyName: "Due", Status: StatusPending},
	}

	_ = FilterCompanies(companies, "uno", FilterAll)
	if len(companies) != 2 {
		t.Fatalf("base collection mutated: %d entries", len(companies))
	}
}

func TestFilterBatchesCombinesWithAnd(t *testing.T) {
	batches := []*Batch{
		{BatchID: 1, Name: "Olio 2024", Location: "Puglia"},
		{BatchID: 2, Name: "Olio 2025", Location: "Toscana"},
		{BatchID: 3, Name: "Vino 2025", Location: "Toscana", IsClosed: true},
	}

	filtered := FilterBatches(batches, "olio", "toscana", FilterAll)
	if len(filtered) != 1 || filtered[0].BatchID != 2 {
		t.Fatalf("expected only batch 2, got %v", filtered)
	}
}

func TestFilterBatchesOpenClosed(t *testing.T) {
	batches := []*Batch{
		{BatchID: 1},
		{BatchID: 2, IsClosed: true},
	}

	open := FilterBatches(batches, "", "", FilterOpen)
	if len(open) != 1 || open[0].BatchID != 1 {
		t.Fatalf("expected only open batch 1, got %v", open)
	}

	closed := FilterBatches(batches, "", "", FilterClosed)
	if len(closed) != 1 || closed[0].BatchID != 2 {
		t.Fatalf("expected only closed batch 2, got %v", closed)
	}
}
