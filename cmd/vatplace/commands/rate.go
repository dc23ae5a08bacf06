package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/veridia/vatplace/billing"
	"github.com/veridia/vatplace/geoip2"
	"github.com/veridia/vatplace/phone"
	"github.com/veridia/vatplace/rates"
	"github.com/veridia/vatplace/residence"
)

// RateCmd groups the rate resolution subcommands, one per evidence source.
var RateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Resolve the applicable VAT rate for a customer",
}

var rateAddressCmd = &cobra.Command{
	Use:   "address <country-code>",
	Short: "Resolve the VAT rate from a billing address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postalCode, _ := cmd.Flags().GetString("postal-code")
		city, _ := cmd.Flags().GetString("city")

		result, err := billing.CalculateRate(args[0], postalCode, city)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

var rateResidenceCmd = &cobra.Command{
	Use:   "residence <country-code>",
	Short: "Resolve the VAT rate from a declared country of residence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exception, _ := cmd.Flags().GetString("exception")

		result, err := residence.CalculateRate(args[0], exception)
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

var rateGeoCmd = &cobra.Command{
	Use:   "geo <country-code>",
	Short: "Resolve the VAT rate from IP geolocation data",
	Long: `Resolve the VAT rate from GeoLite2 country, subdivision, and city data.

Some exception zones cannot be pinned down by geolocation alone; pass
--evidence-country and --evidence-exception with the outcome of a billing
address or declared residence lookup to resolve those.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subdivision, _ := cmd.Flags().GetString("subdivision")
		city, _ := cmd.Flags().GetString("city")

		result, err := geoip2.CalculateRate(args[0], subdivision, city, evidenceFlags(cmd))
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

var ratePhoneCmd = &cobra.Command{
	Use:   "phone <number>",
	Short: "Resolve the VAT rate from an international phone number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := phone.CalculateRate(args[0], evidenceFlags(cmd))
		if err != nil {
			return err
		}
		return printResult(cmd, result)
	},
}

func init() {
	rateAddressCmd.Flags().String("postal-code", "", "Billing postal code")
	rateAddressCmd.Flags().String("city", "", "Billing city")

	rateResidenceCmd.Flags().String("exception", "", "Declared exception zone name")

	rateGeoCmd.Flags().String("subdivision", "", "GeoLite2 subdivision name")
	rateGeoCmd.Flags().String("city", "", "GeoLite2 city name")

	for _, cmd := range []*cobra.Command{rateGeoCmd, ratePhoneCmd} {
		cmd.Flags().String("evidence-country", "", "Country code from a corroborating lookup")
		cmd.Flags().String("evidence-exception", "", "Exception name from a corroborating lookup")
	}

	RateCmd.AddCommand(rateAddressCmd)
	RateCmd.AddCommand(rateResidenceCmd)
	RateCmd.AddCommand(rateGeoCmd)
	RateCmd.AddCommand(ratePhoneCmd)
}

func evidenceFlags(cmd *cobra.Command) *rates.Evidence {
	country, _ := cmd.Flags().GetString("evidence-country")
	if country == "" {
		return nil
	}
	exception, _ := cmd.Flags().GetString("evidence-exception")
	return &rates.Evidence{CountryCode: country, ExceptionName: exception}
}

func printResult(cmd *cobra.Command, result rates.Result) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		output, err := json.MarshalIndent(map[string]string{
			"rate":           result.Rate.String(),
			"country_code":   result.CountryCode,
			"exception_name": result.ExceptionName,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	percent := result.Rate.Shift(2)
	if result.ExceptionName != "" {
		pterm.Success.Printf("VAT rate %s%% (%s, %s)\n", percent, result.CountryCode, result.ExceptionName)
	} else {
		pterm.Success.Printf("VAT rate %s%% (%s)\n", percent, result.CountryCode)
	}
	return nil
}
