package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vulntriage/vulntriage/vulntriage/journal"
)

const journalTimeLayout = "2006-01-02 15:04"

var journalNameAt string

var journalNameCmd = &cobra.Command{
	Use:   "journal-name",
	Short: "Show the name of the journal a publication belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at := time.Now()
		if journalNameAt != "" {
			parsed, err := time.ParseInLocation(journalTimeLayout, journalNameAt, time.Local)
			if err != nil {
				return fmt.Errorf("bad --at value %q (expected %q): %w", journalNameAt, journalTimeLayout, err)
			}
			at = parsed
		}

		fmt.Println(journal.NameFor(at, appConfig.Report.JournalBaseName))
		return nil
	},
}

func init() {
	journalNameCmd.Flags().StringVar(&journalNameAt, "at", "", fmt.Sprintf("publication time (format %q, default is now)", journalTimeLayout))

	rootCmd.AddCommand(journalNameCmd)
}
