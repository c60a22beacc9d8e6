package service

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rajdesai17/finplay/internal/catalog"
	"github.com/rajdesai17/finplay/internal/content"
	"github.com/rajdesai17/finplay/internal/database"
	"github.com/rajdesai17/finplay/internal/models"
	"github.com/rajdesai17/finplay/internal/progression"
	"github.com/rajdesai17/finplay/internal/repository"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.ApplySchema(); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	return db
}

// newServices builds the full service stack on a fresh database with
// auto-dismiss disabled so tests control the notification lifecycle.
func newServices(t *testing.T) (*ProgressionService, *SimulationService, *BackupService) {
	t.Helper()

	db := newTestDB(t)
	progressRepo := repository.NewProgressRepository(db)
	runRepo := repository.NewRunRepository(db)

	prog := NewProgressionService(progressRepo, 0)
	sims := NewSimulationService(prog, runRepo)
	backup := NewBackupService(prog, runRepo)
	return prog, sims, backup
}

func TestApplyRewardUpdatesAndPersists(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)
	repo := repository.NewProgressRepository(db)
	prog := NewProgressionService(repo, 0)

	state, err := prog.ApplyReward(models.Reward{XP: 120, Cashback: 30, BadgeID: catalog.BadgeTaxNinja})
	if err != nil {
		t.Fatalf("ApplyReward() failed: %v", err)
	}
	if state.XP != 120 || state.Level != 2 || state.Cashback != 30 {
		t.Errorf("State = XP %d Level %d Cashback %d, want 120/2/30", state.XP, state.Level, state.Cashback)
	}

	// A second service over the same repository sees the written state,
	// as a process restart would
	reloaded := NewProgressionService(repo, 0)
	got := reloaded.State()
	if got.XP != 120 || got.Cashback != 30 {
		t.Errorf("Reloaded state = XP %d Cashback %d, want 120/30", got.XP, got.Cashback)
	}
	if len(got.EarnedBadges()) != 1 {
		t.Errorf("Reloaded earned badges = %d, want 1", len(got.EarnedBadges()))
	}
}

func TestApplyRewardRejectsNegative(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	prog, _, _ := newServices(t)

	if _, err := prog.ApplyReward(models.Reward{XP: -5}); !errors.Is(err, progression.ErrInvalidReward) {
		t.Errorf("err = %v, want ErrInvalidReward", err)
	}
	if got := prog.State(); got.XP != 0 {
		t.Errorf("State mutated by rejected reward: XP = %d", got.XP)
	}
	if _, showing := prog.CurrentReward(); showing {
		t.Error("Rejected reward was posted as a notification")
	}
}

func TestRewardNotificationLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	prog, _, _ := newServices(t)

	if _, showing := prog.CurrentReward(); showing {
		t.Fatal("Fresh service has a pending reward")
	}

	if _, err := prog.ApplyReward(models.Reward{XP: 40}); err != nil {
		t.Fatalf("ApplyReward() failed: %v", err)
	}
	reward, showing := prog.CurrentReward()
	if !showing {
		t.Fatal("No pending reward after ApplyReward()")
	}
	if reward.XP != 40 {
		t.Errorf("Pending reward XP = %d, want 40", reward.XP)
	}

	if !prog.DismissReward() {
		t.Error("DismissReward() returned false with a reward showing")
	}
	if prog.DismissReward() {
		t.Error("Second DismissReward() returned true")
	}
}

func TestRewardAutoDismiss(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := newTestDB(t)
	repo := repository.NewProgressRepository(db)
	prog := NewProgressionService(repo, 20*time.Millisecond)

	if _, err := prog.ApplyReward(models.Reward{XP: 10}); err != nil {
		t.Fatalf("ApplyReward() failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, showing := prog.CurrentReward(); !showing {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Reward was not auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestCompleteAppliesRewardAndRecordsRun(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, sims, _ := newServices(t)

	result, err := sims.Complete("tax-return", content.Outcome{Score: 90, Accuracy: 90})
	if err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	want := models.Reward{XP: 90, Cashback: 45, BadgeID: catalog.BadgeTaxNinja}
	if result.Reward != want {
		t.Errorf("Reward = %+v, want %+v", result.Reward, want)
	}
	if result.State.XP != 90 {
		t.Errorf("State XP = %d, want 90", result.State.XP)
	}

	report, err := sims.Report()
	if err != nil {
		t.Fatalf("Report() failed: %v", err)
	}
	if report.TotalRuns != 1 {
		t.Errorf("TotalRuns = %d, want 1", report.TotalRuns)
	}
	if len(report.RecentRuns) != 1 || report.RecentRuns[0].SimulationID != "tax-return" {
		t.Errorf("RecentRuns = %+v, want one tax-return run", report.RecentRuns)
	}
}

func TestCompleteUnknownSimulation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, sims, _ := newServices(t)

	if _, err := sims.Complete("no-such-sim", content.Outcome{}); !errors.Is(err, ErrUnknownSimulation) {
		t.Errorf("err = %v, want ErrUnknownSimulation", err)
	}
}

func TestReset(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	prog, sims, _ := newServices(t)

	if _, err := sims.Complete("piggy-bank", content.Outcome{Score: 100}); err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}

	if err := prog.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := sims.ResetHistory(); err != nil {
		t.Fatalf("ResetHistory() failed: %v", err)
	}

	state := prog.State()
	if state.XP != 0 || state.Cashback != 0 || state.Level != 1 {
		t.Errorf("State after reset = %+v, want default", state)
	}
	if len(state.EarnedBadges()) != 0 {
		t.Errorf("Earned badges survived reset: %d", len(state.EarnedBadges()))
	}
	if _, showing := prog.CurrentReward(); showing {
		t.Error("Pending reward survived reset")
	}

	report, err := sims.Report()
	if err != nil {
		t.Fatalf("Report() failed: %v", err)
	}
	if report.TotalRuns != 0 {
		t.Errorf("TotalRuns after reset = %d, want 0", report.TotalRuns)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	prog, sims, backup := newServices(t)

	if _, err := sims.Complete("budget", content.Outcome{Score: 25, Savings: 6000, SavingsPercent: 24}); err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	if _, err := sims.Complete("barter-mela", content.Outcome{Score: 3}); err != nil {
		t.Fatalf("Complete() failed: %v", err)
	}
	wantState := prog.State()

	var buf bytes.Buffer
	if err := backup.ExportToWriter(&buf); err != nil {
		t.Fatalf("ExportToWriter() failed: %v", err)
	}

	if err := prog.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := sims.ResetHistory(); err != nil {
		t.Fatalf("ResetHistory() failed: %v", err)
	}

	if err := backup.ImportFromReader(&buf); err != nil {
		t.Fatalf("ImportFromReader() failed: %v", err)
	}

	got := prog.State()
	if got.XP != wantState.XP || got.Cashback != wantState.Cashback || got.Level != wantState.Level {
		t.Errorf("Restored state = %+v, want %+v", got, wantState)
	}
	if len(got.EarnedBadges()) != len(wantState.EarnedBadges()) {
		t.Errorf("Restored earned badges = %d, want %d",
			len(got.EarnedBadges()), len(wantState.EarnedBadges()))
	}

	report, err := sims.Report()
	if err != nil {
		t.Fatalf("Report() failed: %v", err)
	}
	if report.TotalRuns != 2 {
		t.Errorf("TotalRuns after import = %d, want 2", report.TotalRuns)
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	_, _, backup := newServices(t)

	err := backup.Import(BackupData{Version: 99})
	if err == nil {
		t.Error("Import() accepted an unknown backup version")
	}
}
