package db

import (
	"testing"
)

func TestRecordAndListRuns(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	id1, err := db.RecordRun(Run{
		Model:        "gemini-2.5-flash",
		Topic:        "drone batteries",
		URLCount:     2,
		ProductCount: 5,
		QACount:      3,
		Status:       RunStatusOK,
		ArtifactPath: "webintel-results/run-1.json",
	})
	if err != nil {
		t.Fatalf("RecordRun() error = %v", err)
	}
	if id1 == 0 {
		t.Error("RecordRun() returned id 0")
	}

	_, err = db.RecordRun(Run{
		Model:        "gemini-2.5-flash",
		URLCount:     1,
		Status:       RunStatusFailed,
		ErrorMessage: "failed to analyze: model API returned status 429",
	})
	if err != nil {
		t.Fatalf("RecordRun() second call error = %v", err)
	}

	runs, err := db.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns() = %d runs, want 2", len(runs))
	}
	// Newest first.
	if runs[0].Status != RunStatusFailed || runs[1].RunID != id1 {
		t.Errorf("ListRuns() order wrong: %+v", runs)
	}

	run, err := db.GetRunByID(id1)
	if err != nil {
		t.Fatalf("GetRunByID() error = %v", err)
	}
	if run.Topic != "drone batteries" || run.ProductCount != 5 {
		t.Errorf("GetRunByID() = %+v", run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("run CreatedAt not populated")
	}
}

func TestListRuns_Limit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	for i := 0; i < 5; i++ {
		if _, err := db.RecordRun(Run{Model: "m", URLCount: 1, Status: RunStatusOK}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := db.ListRuns(3)
	if err != nil {
		t.Fatalf("ListRuns() error = %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("ListRuns(3) = %d runs, want 3", len(runs))
	}
}

func TestGetRunByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, err := db.GetRunByID(999); err == nil {
		t.Error("GetRunByID(999) expected error")
	}
}
