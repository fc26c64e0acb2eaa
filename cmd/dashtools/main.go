// ABOUTME: Entry point for the dashtools CLI.
// ABOUTME: Wires the dataset generator, spreadsheet exporters, and assistant updater.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lojaralph/dashtools/internal/calendar"
	"github.com/lojaralph/dashtools/internal/catalog"
	"github.com/lojaralph/dashtools/internal/export"
	"github.com/lojaralph/dashtools/internal/generate"
	"github.com/lojaralph/dashtools/internal/vapi"
)

var (
	outDir    string
	seed      int64
	startDate string
	endDate   string

	dataDir   string
	scriptOut string
	chunkSize int
	xlsxOut   string

	assistantID string
	apiTimeout  time.Duration
	dryRun      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashtools",
		Short: "Tooling for the Loja de Ferragens Ralph dashboard",
		Long: `dashtools maintains the hardware-store dashboard's supporting data.

Commands:
  generate          Produce the five CSV fixture files (sales, tasks, stock,
                    attendance, email metrics) for a seeded date range
  appsscript        Package the CSVs into a paste-and-run Google Apps Script
  xlsx              Export the CSVs into a single .xlsx workbook
  assistant update  Push the tuned Francisco configuration to the Vapi API

The generator is deterministic: the same seed and date range always produce
byte-identical files.`,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic dashboard datasets",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "test-data", "Output directory for the CSV files")
	generateCmd.Flags().Int64Var(&seed, "seed", generate.DefaultSeed, "Random seed")
	generateCmd.Flags().StringVar(&startDate, "start", generate.DefaultStart.Format(calendar.DateFormat), "Period start (YYYY-MM-DD)")
	generateCmd.Flags().StringVar(&endDate, "end", generate.DefaultEnd.Format(calendar.DateFormat), "Period end, inclusive (YYYY-MM-DD)")

	appsscriptCmd := &cobra.Command{
		Use:   "appsscript",
		Short: "Build the Apps Script importer from the generated CSVs",
		RunE:  runAppsScript,
	}
	appsscriptCmd.Flags().StringVar(&dataDir, "data", "test-data", "Directory holding the five CSV files")
	appsscriptCmd.Flags().StringVar(&scriptOut, "out", "", "Script path (default <data>/import-data.gs)")
	appsscriptCmd.Flags().IntVar(&chunkSize, "chunk-size", export.DefaultChunkSize, "Rows per data chunk function")

	xlsxCmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export the generated CSVs into one .xlsx workbook",
		RunE:  runXLSX,
	}
	xlsxCmd.Flags().StringVar(&dataDir, "data", "test-data", "Directory holding the five CSV files")
	xlsxCmd.Flags().StringVar(&xlsxOut, "out", "dashboard-data.xlsx", "Workbook path")

	assistantCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Manage the Mega Loja voice assistant",
	}
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "PATCH the tuned Francisco configuration to the Vapi API",
		Long: `Builds the Francisco payload (dynamic first message, rewritten system
prompt, voice tuning, speech-timing plans) and sends one PATCH request.

Credentials:
  VAPI_API_KEY        API key (also read from .env)
  VAPI_ASSISTANT_ID   Assistant to update (or --assistant-id)`,
		RunE: runAssistantUpdate,
	}
	updateCmd.Flags().StringVar(&assistantID, "assistant-id", "", "Assistant UUID (default $VAPI_ASSISTANT_ID)")
	updateCmd.Flags().DurationVar(&apiTimeout, "timeout", vapi.DefaultTimeout, "Request timeout")
	updateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the payload instead of calling the API")
	assistantCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(generateCmd, appsscriptCmd, xlsxCmd, assistantCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start, err := time.Parse(calendar.DateFormat, startDate)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := time.Parse(calendar.DateFormat, endDate)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	log.Printf("Generating dashboard data for %s to %s (seed %d)", startDate, endDate, seed)

	ds, err := generate.Run(generate.Config{Start: start, End: end, Seed: seed, Progress: true}, catalog.Default())
	if err != nil {
		return err
	}

	tables := export.Tables(ds)
	if err := export.WriteCSVDir(outDir, tables); err != nil {
		return err
	}
	for _, t := range tables {
		log.Printf("%s: %d %s generated", t.Name, len(t.Rows), t.RowNoun)
	}
	log.Printf("All CSV files saved to: %s", outDir)
	return nil
}

func runAppsScript(cmd *cobra.Command, args []string) error {
	tables, err := export.LoadCSVDir(dataDir)
	if err != nil {
		return err
	}
	if scriptOut == "" {
		scriptOut = filepath.Join(dataDir, "import-data.gs")
	}

	size, err := export.WriteAppsScript(scriptOut, tables, chunkSize)
	if err != nil {
		return err
	}
	log.Printf("Generated Apps Script: %s", scriptOut)
	log.Printf("File size: %.1f KB", float64(size)/1024)
	for _, t := range tables {
		log.Printf("  %s: %d %s", t.Name, len(t.Rows), t.RowNoun)
	}
	return nil
}

func runXLSX(cmd *cobra.Command, args []string) error {
	tables, err := export.LoadCSVDir(dataDir)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(xlsxOut, tables); err != nil {
		return err
	}
	log.Printf("Workbook saved to: %s", xlsxOut)
	return nil
}

func runAssistantUpdate(cmd *cobra.Command, args []string) error {
	loadDotEnv()

	cfg := vapi.FranciscoConfig()
	payload, err := vapi.MarshalConfig(cfg)
	if err != nil {
		return err
	}

	if dryRun {
		fmt.Println(string(payload))
		return nil
	}

	apiKey := os.Getenv("VAPI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("VAPI_API_KEY is not set")
	}
	if assistantID == "" {
		assistantID = os.Getenv("VAPI_ASSISTANT_ID")
	}
	if assistantID == "" {
		return fmt.Errorf("assistant id required: pass --assistant-id or set VAPI_ASSISTANT_ID")
	}

	log.Printf("Payload size: %d bytes", len(payload))
	log.Printf("Sending PATCH for assistant %s...", assistantID)

	client := vapi.NewClient(apiKey, vapi.WithTimeout(apiTimeout))
	updated, err := client.UpdateAssistant(cmd.Context(), assistantID, cfg)
	if err != nil {
		return err
	}

	vapi.WriteReport(os.Stdout, updated)
	return nil
}

// loadDotEnv probes the usual places for a .env file; a missing file is fine.
func loadDotEnv() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		godotenv.Load(filepath.Join(home, ".env"))
	}
}
