package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"firebehave/spread"
	"firebehave/surface"
)

// SQLiteLogger records one row per `run` invocation to a Runs table:
// the scenario inputs and the full FireBehavior output vector.
//
// Grounded on _examples/HD220-crownet/storage/sqlite_logger.go's
// NewSQLiteLogger/createTables/LogX/Close shape; replaces the per-cycle
// network-snapshot table with a per-run fire-behavior table.
type SQLiteLogger struct {
	db *sql.DB
}

// NewSQLiteLogger opens (creating if necessary) a SQLite database at
// dataSourceName and ensures the Runs table exists. Unlike the teacher's
// logger, an existing database is appended to rather than recreated,
// since a fire-behavior run log is meant to accumulate across sessions.
func NewSQLiteLogger(dataSourceName string) (*SQLiteLogger, error) {
	dbConn, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database at %s: %w", dataSourceName, err)
	}
	if err = dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to ping SQLite database at %s: %w", dataSourceName, err)
	}

	logger := &SQLiteLogger{db: dbConn}
	if err = logger.createTables(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to create tables in SQLite database: %w", err)
	}
	return logger, nil
}

func (sl *SQLiteLogger) createTables() error {
	runsTableSQL := `
	CREATE TABLE IF NOT EXISTS Runs (
		RunID INTEGER PRIMARY KEY AUTOINCREMENT,
		Timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		FuelModelNumber INTEGER NOT NULL,
		MoistureOneHour REAL,
		MoistureTenHour REAL,
		MoistureHundredHour REAL,
		MoistureLiveHerbaceous REAL,
		MoistureLiveWoody REAL,
		WindSpeedMph REAL,
		WindDirectionDeg REAL,
		SlopeDeg REAL,
		SpreadRateChainsPerHour REAL,
		DirectionOfMaxSpreadDeg REAL,
		FlamelengthFt REAL,
		FirelineIntensityBtuFtSec REAL,
		LengthToWidthRatio REAL,
		WindLimitExceeded INTEGER
	);`
	if _, err := sl.db.Exec(runsTableSQL); err != nil {
		return fmt.Errorf("failed to create Runs table: %w", err)
	}
	return nil
}

// LogRun inserts one row capturing in and its resulting fb.
func (sl *SQLiteLogger) LogRun(in *surface.Inputs, fb spread.FireBehavior) error {
	if sl.db == nil {
		return fmt.Errorf("SQLite logger is not initialized")
	}
	windLimitExceeded := 0
	if fb.WindLimitExceeded {
		windLimitExceeded = 1
	}
	_, err := sl.db.Exec(`INSERT INTO Runs (
		Timestamp, FuelModelNumber,
		MoistureOneHour, MoistureTenHour, MoistureHundredHour, MoistureLiveHerbaceous, MoistureLiveWoody,
		WindSpeedMph, WindDirectionDeg, SlopeDeg,
		SpreadRateChainsPerHour, DirectionOfMaxSpreadDeg, FlamelengthFt, FirelineIntensityBtuFtSec,
		LengthToWidthRatio, WindLimitExceeded
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now(), in.FuelModelNumber,
		float64(in.MoistureOneHour), float64(in.MoistureTenHour), float64(in.MoistureHundredHour),
		float64(in.MoistureLiveHerbaceous), float64(in.MoistureLiveWoody),
		float64(in.WindSpeed), float64(in.WindDirection), float64(in.Slope),
		float64(fb.SpreadRate), float64(fb.DirectionOfMaxSpread), float64(fb.FlameLength), float64(fb.FirelineIntensity),
		fb.LengthToWidthRatio, windLimitExceeded,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run log row: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (sl *SQLiteLogger) Close() error {
	if sl.db != nil {
		return sl.db.Close()
	}
	return nil
}
