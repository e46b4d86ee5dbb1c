package results

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndRecent(t *testing.T) {
	rec, err := Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()

	ctx := context.Background()
	res := Result{
		GameID:     "abc123",
		Mode:       "single",
		Status:     "won",
		Rounds:     3,
		Winners:    1,
		FinishedAt: time.Now(),
	}
	if err := rec.Record(ctx, res); err != nil {
		t.Fatal(err)
	}
	// Re-recording the same game is a no-op, not an error.
	if err := rec.Record(ctx, res); err != nil {
		t.Fatal(err)
	}

	out, err := rec.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d rows, want 1", len(out))
	}
	if out[0].GameID != "abc123" || out[0].Status != "won" || out[0].Winners != 1 {
		t.Fatalf("row = %+v", out[0])
	}
}
