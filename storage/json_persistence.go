// Package storage provides utilities for data persistence: JSON
// serialization of the fuel model catalog's host-managed custom overlay,
// and SQLite logging of run results.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"firebehave/fuelmodel"
)

// customFuelModelRecord is the JSON-friendly mirror of fuelmodel.FuelModel
// for the fields SetCustom accepts; IsReserved/IsDefined are derived on
// load, not stored.
type customFuelModelRecord struct {
	Number                   int     `json:"number"`
	Code                     string  `json:"code"`
	Name                     string  `json:"name"`
	FuelbedDepth             float64 `json:"fuelbedDepth"`
	MoistureOfExtinctionDead float64 `json:"moistureOfExtinctionDead"`
	HeatOfCombustionDead     float64 `json:"heatOfCombustionDead"`
	HeatOfCombustionLive     float64 `json:"heatOfCombustionLive"`
	LoadOneHour              float64 `json:"loadOneHour"`
	LoadTenHour              float64 `json:"loadTenHour"`
	LoadHundredHour          float64 `json:"loadHundredHour"`
	LoadLiveHerbaceous       float64 `json:"loadLiveHerbaceous"`
	LoadLiveWoody            float64 `json:"loadLiveWoody"`
	SavrOneHour              float64 `json:"savrOneHour"`
	SavrLiveHerbaceous       float64 `json:"savrLiveHerbaceous"`
	SavrLiveWoody            float64 `json:"savrLiveWoody"`
	IsDynamic                bool    `json:"isDynamic"`
}

// SaveCatalogJSON serializes the catalog's custom (non-reserved) fuel
// model slots to a JSON file, so a user's custom fuel models survive
// across CLI invocations. The catalog itself has no wire format per
// spec.md §6 — only this host-managed overlay is persisted.
//
// Grounded on _examples/HD220-crownet/storage/json_persistence.go's
// SaveNetworkWeightsToJSON: MarshalIndent then os.WriteFile, 0644.
func SaveCatalogJSON(cat *fuelmodel.Catalog, filePath string) error {
	var records []customFuelModelRecord
	for _, n := range cat.CustomNumbers() {
		fm := cat.Get(n)
		records = append(records, customFuelModelRecord{
			Number:                   fm.Number,
			Code:                     fm.Code,
			Name:                     fm.Name,
			FuelbedDepth:             fm.FuelbedDepth,
			MoistureOfExtinctionDead: fm.MoistureOfExtinctionDead,
			HeatOfCombustionDead:     fm.HeatOfCombustionDead,
			HeatOfCombustionLive:     fm.HeatOfCombustionLive,
			LoadOneHour:              fm.LoadOneHour,
			LoadTenHour:              fm.LoadTenHour,
			LoadHundredHour:          fm.LoadHundredHour,
			LoadLiveHerbaceous:       fm.LoadLiveHerbaceous,
			LoadLiveWoody:            fm.LoadLiveWoody,
			SavrOneHour:              fm.SavrOneHour,
			SavrLiveHerbaceous:       fm.SavrLiveHerbaceous,
			SavrLiveWoody:            fm.SavrLiveWoody,
			IsDynamic:                fm.IsDynamic,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize custom fuel models to JSON: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog JSON file %s: %w", filePath, err)
	}
	return nil
}

// LoadCatalogJSON reads a custom-fuel-model overlay previously written by
// SaveCatalogJSON and upserts each record into cat via SetCustom. A
// record naming a reserved slot is skipped with an error rather than
// aborting the whole load, mirroring the catalog's own "fail that one
// write, leave the rest alone" contract.
func LoadCatalogJSON(cat *fuelmodel.Catalog, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("catalog JSON file %s not found: %w", filePath, err)
		}
		return fmt.Errorf("failed to read catalog JSON file %s: %w", filePath, err)
	}

	var records []customFuelModelRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to unmarshal catalog JSON from %s: %w", filePath, err)
	}

	var firstErr error
	for _, r := range records {
		ok := cat.SetCustom(r.Number, r.Code, r.Name,
			r.FuelbedDepth, r.MoistureOfExtinctionDead, r.HeatOfCombustionDead, r.HeatOfCombustionLive,
			r.LoadOneHour, r.LoadTenHour, r.LoadHundredHour, r.LoadLiveHerbaceous, r.LoadLiveWoody,
			r.SavrOneHour, r.SavrLiveHerbaceous, r.SavrLiveWoody, r.IsDynamic)
		if !ok && firstErr == nil {
			firstErr = fmt.Errorf("could not load custom fuel model %d from %s: slot is reserved or out of range", r.Number, filePath)
		}
	}
	return firstErr
}
