package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vulntriage/vulntriage/vulntriage/rule"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the configured override rules in evaluation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRules(appConfig.Rules.Set())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func listRules(rules rule.Set) error {
	all := rules.All()
	if len(all) == 0 {
		fmt.Println("No rules configured")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Name", "Vendor", "Product", "Priority", "ID", "Replacement"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, r := range all {
		table.Append([]string{
			string(r.Category),
			r.Name,
			r.Vendor,
			r.Product,
			strconv.FormatBool(r.IsPriority()),
			r.TargetID,
			r.ReplacementName,
		})
	}
	table.Render()

	fmt.Printf("\n%d rules, %d priority\n", rules.Len(), rules.PriorityCount())
	return nil
}
