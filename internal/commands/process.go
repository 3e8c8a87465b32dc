package commands

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/subtally/subtally-api/internal/config"
	"github.com/subtally/subtally-api/internal/extract"
	"github.com/subtally/subtally-api/internal/models"
	"github.com/subtally/subtally-api/internal/services"
)

// newProcessCommand runs the statement pipeline on a local file and prints
// the report as JSON. Useful for checking a statement without the API.
func newProcessCommand() *cobra.Command {
	var accountType string
	var compact bool

	cmd := &cobra.Command{
		Use:   "process <statement-file>",
		Short: "Extract and categorize transactions from a CSV or PDF statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			cfg := config.LoadFromEnv()
			validator := services.NewFileValidator(cfg.MaxUploadBytes)
			processor := services.NewProcessor(validator, extract.NewPDFExtractor(), cfg.MaxPDFPages)

			filename := filepath.Base(path)
			contentType := mime.TypeByExtension(filepath.Ext(filename))

			report, err := processor.ProcessFile(cmd.Context(), data, filename, contentType, models.ParseAccountType(accountType))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&accountType, "account-type", string(models.AccountChecking), "account context: checking or credit")
	cmd.Flags().BoolVar(&compact, "compact", false, "print the report without indentation")

	return cmd
}
