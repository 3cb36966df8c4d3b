package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"firebehave/cli"
	"firebehave/config"
)

var (
	catalogFile   string
	catalogNumber int

	catalogCode                     string
	catalogName                     string
	catalogFuelbedDepth             float64
	catalogMoistureOfExtinctionDead float64
	catalogHeatOfCombustionDead     float64
	catalogHeatOfCombustionLive     float64
	catalogLoadOneHour              float64
	catalogLoadTenHour              float64
	catalogLoadHundredHour          float64
	catalogLoadLiveHerbaceous       float64
	catalogLoadLiveWoody            float64
	catalogSavrOneHour              float64
	catalogSavrLiveHerbaceous       float64
	catalogSavrLiveWoody            float64
	catalogIsDynamic                bool
)

// catalogCmd and its subcommands inspect and mutate the fuel model
// catalog: listing and showing standard and custom models, and
// upserting or clearing a custom slot, optionally persisted to a JSON
// overlay file via --catalogFile.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or manage the fuel model catalog.",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every defined fuel model number, code, and name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogSubcommand(config.CatalogList, 0)
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the full parameters of one fuel model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogSubcommand(config.CatalogShow, catalogNumber)
	},
}

var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear a custom fuel model slot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogSubcommand(config.CatalogClear, catalogNumber)
	},
}

var catalogSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Define or replace a custom fuel model slot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg := config.NewAppConfig()
		appCfg.Cli.Mode = config.ModeCatalog
		appCfg.Cli.CatalogSubcommand = config.CatalogSet
		appCfg.Cli.CatalogNumber = catalogNumber
		appCfg.Cli.CatalogFile = catalogFile

		if err := appCfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration for catalog set: %w", err)
		}

		orchestrator := cli.NewOrchestrator(appCfg)
		if err := orchestrator.SetCustomFuelModel(catalogNumber, catalogCode, catalogName,
			catalogFuelbedDepth, catalogMoistureOfExtinctionDead, catalogHeatOfCombustionDead, catalogHeatOfCombustionLive,
			catalogLoadOneHour, catalogLoadTenHour, catalogLoadHundredHour, catalogLoadLiveHerbaceous, catalogLoadLiveWoody,
			catalogSavrOneHour, catalogSavrLiveHerbaceous, catalogSavrLiveWoody, catalogIsDynamic); err != nil {
			return fmt.Errorf("catalog set failed: %w", err)
		}
		return nil
	},
}

func runCatalogSubcommand(subcommand string, number int) error {
	appCfg := config.NewAppConfig()
	appCfg.Cli.Mode = config.ModeCatalog
	appCfg.Cli.CatalogSubcommand = subcommand
	appCfg.Cli.CatalogNumber = number
	appCfg.Cli.CatalogFile = catalogFile

	if err := appCfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration for catalog %s: %w", subcommand, err)
	}

	orchestrator := cli.NewOrchestrator(appCfg)
	if err := orchestrator.Run(); err != nil {
		return fmt.Errorf("catalog %s failed: %w", subcommand, err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogClearCmd, catalogSetCmd)

	catalogCmd.PersistentFlags().StringVar(&catalogFile, "catalogFile", "", "Path to a JSON file holding the custom fuel model overlay.")

	catalogShowCmd.Flags().IntVar(&catalogNumber, "number", 0, "Fuel model number to show.")
	catalogClearCmd.Flags().IntVar(&catalogNumber, "number", 0, "Custom fuel model number to clear.")

	catalogSetCmd.Flags().IntVar(&catalogNumber, "number", 0, "Custom fuel model number to define (must not be a standard/reserved number).")
	catalogSetCmd.Flags().StringVar(&catalogCode, "code", "", "Short fuel model code.")
	catalogSetCmd.Flags().StringVar(&catalogName, "name", "", "Fuel model display name.")
	catalogSetCmd.Flags().Float64Var(&catalogFuelbedDepth, "fuelbedDepth", 1.0, "Fuelbed depth in feet.")
	catalogSetCmd.Flags().Float64Var(&catalogMoistureOfExtinctionDead, "moistureOfExtinctionDead", 0.25, "Dead fuel moisture of extinction fraction.")
	catalogSetCmd.Flags().Float64Var(&catalogHeatOfCombustionDead, "heatOfCombustionDead", 8000, "Dead fuel heat of combustion in Btu/lb.")
	catalogSetCmd.Flags().Float64Var(&catalogHeatOfCombustionLive, "heatOfCombustionLive", 8000, "Live fuel heat of combustion in Btu/lb.")
	catalogSetCmd.Flags().Float64Var(&catalogLoadOneHour, "loadOneHour", 0, "1-hour dead fuel load in lb/ft2.")
	catalogSetCmd.Flags().Float64Var(&catalogLoadTenHour, "loadTenHour", 0, "10-hour dead fuel load in lb/ft2.")
	catalogSetCmd.Flags().Float64Var(&catalogLoadHundredHour, "loadHundredHour", 0, "100-hour dead fuel load in lb/ft2.")
	catalogSetCmd.Flags().Float64Var(&catalogLoadLiveHerbaceous, "loadLiveHerbaceous", 0, "Live herbaceous fuel load in lb/ft2.")
	catalogSetCmd.Flags().Float64Var(&catalogLoadLiveWoody, "loadLiveWoody", 0, "Live woody fuel load in lb/ft2.")
	catalogSetCmd.Flags().Float64Var(&catalogSavrOneHour, "savrOneHour", 1800, "1-hour dead fuel surface-area-to-volume ratio in ft2/ft3.")
	catalogSetCmd.Flags().Float64Var(&catalogSavrLiveHerbaceous, "savrLiveHerbaceous", 1500, "Live herbaceous surface-area-to-volume ratio in ft2/ft3.")
	catalogSetCmd.Flags().Float64Var(&catalogSavrLiveWoody, "savrLiveWoody", 1500, "Live woody surface-area-to-volume ratio in ft2/ft3.")
	catalogSetCmd.Flags().BoolVar(&catalogIsDynamic, "isDynamic", false, "Whether the fuel model is dynamic (herbaceous load transfers to dead as curing increases).")
}
