package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/veridia/vatplace/config"
	"github.com/veridia/vatplace/errors"
	"github.com/veridia/vatplace/vatid"
)

// IDCmd groups the VAT ID subcommands.
var IDCmd = &cobra.Command{
	Use:   "id",
	Short: "Work with VAT identification numbers",
}

var idValidateCmd = &cobra.Command{
	Use:   "validate <vat-id>",
	Short: "Validate a VAT ID against the official registry",
	Long: `Validate a VAT ID against the registry for its jurisdiction.

EU VAT IDs are checked against the VIES service; Norwegian IDs (NO prefix,
MVA suffix) against the Brønnøysund registry. The ID is normalized first,
so spacing, dashes, periods, and the informal GR prefix for Greece are all
accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		validator := vatid.NewValidator(vatid.Config{
			ViesEndpoint:  cfg.Registry.ViesEndpoint,
			BrregEndpoint: cfg.Registry.BrregEndpoint,
			Timeout:       cfg.Registry.Timeout(),
		})

		registration, err := validator.Validate(cmd.Context(), args[0])
		if err != nil {
			switch {
			case errors.IsInvalidID(err):
				pterm.Error.Printf("Invalid VAT ID: %v\n", err)
			case errors.IsRegistryUnavailable(err):
				pterm.Warning.Printf("Registry unavailable, try again later: %v\n", err)
			}
			return err
		}
		if registration == nil {
			pterm.Info.Println("VAT ID is not from the EU or Norway, nothing to validate")
			return nil
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			output, err := json.MarshalIndent(map[string]string{
				"country_code": registration.CountryCode,
				"id":           registration.ID,
				"name":         registration.Name,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(output))
			return nil
		}

		pterm.Success.Printf("%s is registered to %s (%s)\n",
			registration.ID, registration.Name, registration.CountryCode)
		return nil
	},
}

func init() {
	IDCmd.AddCommand(idValidateCmd)
}
