package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veridia/vatplace/cmd/vatplace/commands"
	"github.com/veridia/vatplace/config"
	"github.com/veridia/vatplace/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vatplace",
	Short: "vatplace - EU/Norway VAT rate resolution and VAT ID validation",
	Long: `vatplace - EU/Norway VAT rate resolution and VAT ID validation.

Resolves the applicable VAT rate for a customer from billing address,
declared residence, IP geolocation, or phone number, honoring the special
VAT exception zones (Heligoland, Livigno, Mount Athos, the Canary Islands
and the rest), and validates VAT IDs against the VIES and Brønnøysund
registries.

Examples:
  vatplace rate address DE --postal-code 27498 --city Heligoland
  vatplace rate residence GB --exception Akrotiri
  vatplace rate phone "+43 5676 123456" --evidence-country AT --evidence-exception Jungholz
  vatplace id validate GB978626684
  vatplace options AT`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if err := logger.Initialize(jsonOutput || cfg.Log.JSON, verbose || cfg.Log.Verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(commands.RateCmd)
	rootCmd.AddCommand(commands.IDCmd)
	rootCmd.AddCommand(commands.OptionsCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
