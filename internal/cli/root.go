// Package cli implements the staycation command line: catalog search,
// price quotes and the theme preference.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"staycation/internal/catalog"
	"staycation/internal/domain"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Catalog string
	Format  string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "staycation",
		Short: "Browse and price hotel stays",
		Long:  "Search the hotel catalog, preview stay prices and manage local preferences.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	defCatalog := os.Getenv("CATALOG_FILE")
	if defCatalog == "" {
		defCatalog = "data/hotels.yaml"
	}
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", defCatalog, "hotel catalog YAML file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewQuoteCommand(opts))
	cmd.AddCommand(NewThemeCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) loadCatalog() ([]domain.Hotel, error) {
	return catalog.LoadFile(o.Catalog)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
