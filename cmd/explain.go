package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vulntriage/vulntriage/internal/bus"
	"github.com/vulntriage/vulntriage/internal/ui"
	"github.com/vulntriage/vulntriage/vulntriage/match"
	"github.com/vulntriage/vulntriage/vulntriage/triage"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
	"github.com/vulntriage/vulntriage/vulntriage/words"
)

var explainCmd = &cobra.Command{
	Use:   "explain DESCRIPTION",
	Short: "Show how a single vendor and product description would be triaged",
	Long: `Tokenize the description, match it against the configured inventory tables and apply the override rules.
The journal is not consulted.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter, closer, err := reportWriter()
		defer func() { _ = closer() }()
		if err != nil {
			return err
		}

		return eventLoop(
			startExplainWorker(args[0]),
			setupSignals(),
			eventSubscription,
			func() {},
			ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
		)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func startExplainWorker(description string) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		engine, err := loadEngine(afero.NewOsFs(), false)
		if err != nil {
			errs <- err
			return
		}

		result := engine.Triage(vulnerability.Vulnerability{Product: description})
		bus.Report(explanation(result, appConfig.Match.MinWordLength))
	}()
	return errs
}

func explanation(result triage.Result, minWordLength int) string {
	vendor, product := words.SplitVendorProduct(result.Vulnerability.Product)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Description: %s\n", result.Vulnerability.Product)
	fmt.Fprintf(&sb, "Vendor words:  %s\n", strings.Join(words.Sorted(words.Normalize(vendor, minWordLength)), " "))
	fmt.Fprintf(&sb, "Product words: %s\n\n", strings.Join(words.Sorted(words.Normalize(product, minWordLength)), " "))

	if len(result.Matches) == 0 {
		sb.WriteString("No inventory candidates\n\n")
	} else {
		writeCandidates(&sb, result.Matches)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Decision: %s", result.Decision)
	fmt.Fprintf(&sb, " (source: %s", result.Source)
	if result.Rule != nil {
		fmt.Fprintf(&sb, ", rule: %s/%s", result.Rule.Category, result.Rule.Name)
	}
	sb.WriteString(")\n")
	if dp := result.DisplayProduct(); dp != result.Vulnerability.Product {
		fmt.Fprintf(&sb, "Reported as: %s\n", dp)
	}
	return sb.String()
}

func writeCandidates(sb *strings.Builder, records match.Records) {
	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"Tier", "ID", "Vendor", "Name", "Source", "Words", "Similarity"})
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

	for _, r := range records {
		table.Append([]string{
			fmt.Sprintf("%d", r.Tier),
			r.Entry.ID,
			r.Entry.Vendor,
			r.Entry.Name,
			string(r.Entry.Source),
			fmt.Sprintf("%d (%d+%d)", r.MatchedWordCount, r.VendorMatchedCount, r.ProductMatchedCount),
			fmt.Sprintf("%d", r.AverageSimilarity),
		})
	}
	table.Render()
}
