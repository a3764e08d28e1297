package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gautamprafful007/PDF-Comparator/internal/comparator"
)

func sampleResult() Result {
	records := []comparator.DiffRecord{
		{Kind: comparator.Equal, OldContent: "Same paragraph.", NewContent: "Same paragraph."},
		{Kind: comparator.Added, NewContent: "New paragraph here."},
	}
	return NewResult("old.pdf", "new.pdf", records, comparator.Summarize(records))
}

func TestStoreCRUD(t *testing.T) {
	dbPath := filepath.Join(os.TempDir(), "pdfcomparator_test_report_db")
	defer os.RemoveAll(dbPath)

	store, err := OpenStore(dbPath, "")
	if err != nil {
		t.Fatalf("failed to open report store: %v", err)
	}
	defer store.Close()

	res := sampleResult()
	if err := store.Put(res); err != nil {
		t.Fatalf("failed to put report: %v", err)
	}

	got, err := store.Get(res.ID)
	if err != nil {
		t.Fatalf("failed to get report: %v", err)
	}
	if got.ID != res.ID || got.OldName != res.OldName || len(got.Records) != len(res.Records) {
		t.Errorf("retrieved report does not match")
	}
	if got.Summary.TotalElements != 2 {
		t.Errorf("expected summary to survive the round trip, got %+v", got.Summary)
	}

	metas, err := store.List()
	if err != nil {
		t.Fatalf("failed to list reports: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != res.ID {
		t.Errorf("unexpected listing: %+v", metas)
	}

	if err := store.Delete(res.ID); err != nil {
		t.Fatalf("failed to delete report: %v", err)
	}
	if _, err := store.Get(res.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStoreGetMissing(t *testing.T) {
	dbPath := filepath.Join(os.TempDir(), "pdfcomparator_test_report_missing_db")
	defer os.RemoveAll(dbPath)

	store, err := OpenStore(dbPath, "")
	if err != nil {
		t.Fatalf("failed to open report store: %v", err)
	}
	defer store.Close()

	if _, err := store.Get("no-such-id"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreEncryptedRoundTrip(t *testing.T) {
	dbPath := filepath.Join(os.TempDir(), "pdfcomparator_test_report_enc_db")
	defer os.RemoveAll(dbPath)

	store, err := OpenStore(dbPath, "correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to open encrypted report store: %v", err)
	}
	defer store.Close()

	res := sampleResult()
	if err := store.Put(res); err != nil {
		t.Fatalf("failed to put report: %v", err)
	}

	got, err := store.Get(res.ID)
	if err != nil {
		t.Fatalf("failed to get report: %v", err)
	}
	if got.Records[1].NewContent != "New paragraph here." {
		t.Errorf("decrypted report content does not match: %+v", got.Records)
	}
}
