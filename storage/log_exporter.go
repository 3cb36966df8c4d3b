package storage

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/mattn/go-sqlite3"
)

// ExportRunsCSV connects to the SQLite database at dbPath and writes the
// Runs table to outputPath as CSV. If outputPath is empty, it writes to
// os.Stdout.
//
// Grounded on _examples/HD220-crownet/storage/log_exporter.go's
// ExportLogData: read-only connection, csv.Writer, NullX-typed scan.
func ExportRunsCSV(dbPath, outputPath string) error {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open SQLite database at %s: %w", dbPath, err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping SQLite database at %s: %w", dbPath, err)
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()

	headers := []string{
		"RunID", "Timestamp", "FuelModelNumber",
		"MoistureOneHour", "MoistureTenHour", "MoistureHundredHour", "MoistureLiveHerbaceous", "MoistureLiveWoody",
		"WindSpeedMph", "WindDirectionDeg", "SlopeDeg",
		"SpreadRateChainsPerHour", "DirectionOfMaxSpreadDeg", "FlamelengthFt", "FirelineIntensityBtuFtSec",
		"LengthToWidthRatio", "WindLimitExceeded",
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	rows, err := db.Query(`SELECT RunID, Timestamp, FuelModelNumber,
		MoistureOneHour, MoistureTenHour, MoistureHundredHour, MoistureLiveHerbaceous, MoistureLiveWoody,
		WindSpeedMph, WindDirectionDeg, SlopeDeg,
		SpreadRateChainsPerHour, DirectionOfMaxSpreadDeg, FlamelengthFt, FirelineIntensityBtuFtSec,
		LengthToWidthRatio, WindLimitExceeded
	FROM Runs ORDER BY RunID`)
	if err != nil {
		return fmt.Errorf("failed to query Runs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var runID, windLimitExceeded sql.NullInt64
		var fuelModelNumber sql.NullInt64
		var timestamp sql.NullString
		var m1h, m10h, m100h, mHerb, mWoody, wind, windDir, slope,
			spreadRate, dirMax, flameLen, firelineIntensity, lwr sql.NullFloat64

		if err := rows.Scan(&runID, &timestamp, &fuelModelNumber,
			&m1h, &m10h, &m100h, &mHerb, &mWoody,
			&wind, &windDir, &slope,
			&spreadRate, &dirMax, &flameLen, &firelineIntensity,
			&lwr, &windLimitExceeded,
		); err != nil {
			return fmt.Errorf("failed to scan row from Runs: %w", err)
		}

		record := []string{
			intToString(runID), nullStringToString(timestamp), intToString(fuelModelNumber),
			floatToString(m1h), floatToString(m10h), floatToString(m100h), floatToString(mHerb), floatToString(mWoody),
			floatToString(wind), floatToString(windDir), floatToString(slope),
			floatToString(spreadRate), floatToString(dirMax), floatToString(flameLen), floatToString(firelineIntensity),
			floatToString(lwr), intToString(windLimitExceeded),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return rows.Err()
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func intToString(ni sql.NullInt64) string {
	if ni.Valid {
		return strconv.FormatInt(ni.Int64, 10)
	}
	return ""
}

func floatToString(nf sql.NullFloat64) string {
	if nf.Valid {
		return strconv.FormatFloat(nf.Float64, 'f', -1, 64)
	}
	return ""
}
