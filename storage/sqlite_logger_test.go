package storage_test

import (
	"path/filepath"
	"testing"

	"firebehave/fuelmodel"
	"firebehave/scenario"
	"firebehave/storage"
	"firebehave/surface"
)

func TestSQLiteLoggerLogsRunAndCanBeReopened(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}

	cat := fuelmodel.NewCatalog()
	s := scenario.New(cat)
	s.UpdateSurface(1, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 30, 0, 0, 0, 0)
	s.CalculateForwardSpreadRate(nil)

	if err := logger.LogRun(&s.Inputs, s.Results); err != nil {
		t.Fatalf("LogRun failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("reopening existing database failed: %v", err)
	}
	defer reopened.Close()
}

func TestLogRunOnClosedLoggerFails(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	logger, err := storage.NewSQLiteLogger(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteLogger failed: %v", err)
	}
	logger.Close()

	cat := fuelmodel.NewCatalog()
	s := scenario.New(cat)
	s.UpdateSurface(1, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 30, 0, 0, 0, 0)
	s.CalculateForwardSpreadRate(nil)

	if err := logger.LogRun(&s.Inputs, s.Results); err == nil {
		t.Errorf("expected LogRun on a closed database to fail")
	}
}
