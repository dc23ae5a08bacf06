package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/veridia/vatplace/residence"
)

// OptionsCmd prints the residence declaration catalog: every country a
// customer may declare, with the exception zones they may declare within
// it.
var OptionsCmd = &cobra.Command{
	Use:   "options [country-code]",
	Short: "List declarable countries and their VAT exception zones",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if len(args) == 1 {
			exceptions, err := residence.ExceptionsByCountry(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				output, err := json.MarshalIndent(exceptions, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(output))
				return nil
			}
			if len(exceptions) == 0 {
				pterm.Info.Printf("%s has no VAT exception zones\n", strings.ToUpper(args[0]))
				return nil
			}
			for _, name := range exceptions {
				pterm.Printf("%s\n", name)
			}
			return nil
		}

		countries := residence.Options()
		if jsonOutput {
			output, err := json.MarshalIndent(countries, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(output))
			return nil
		}

		rows := pterm.TableData{{"Code", "Name", "Exceptions"}}
		for _, country := range countries {
			rows = append(rows, []string{
				country.Code, country.Name, strings.Join(country.Exceptions, ", "),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}
