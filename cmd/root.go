package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/profile"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"
	"golang.org/x/term"

	"github.com/vulntriage/vulntriage/internal"
	"github.com/vulntriage/vulntriage/internal/bus"
	"github.com/vulntriage/vulntriage/internal/log"
	"github.com/vulntriage/vulntriage/internal/stringutil"
	"github.com/vulntriage/vulntriage/internal/ui"
	"github.com/vulntriage/vulntriage/vulntriage"
	"github.com/vulntriage/vulntriage/vulntriage/event"
	"github.com/vulntriage/vulntriage/vulntriage/presenter"
	"github.com/vulntriage/vulntriage/vulntriage/presenter/models"
	"github.com/vulntriage/vulntriage/vulntriage/vulnerability"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [VULNERABILITIES]", internal.ApplicationName),
	Short: "Triage newly disclosed vulnerabilities against the software inventory",
	Long: stringutil.Tprintf(`Decide for every vulnerability of a table whether it applies to the software inventory.

Supports the following inputs:
    {{.appName}} vulns.csv                                   triage the given vulnerability table
    {{.appName}} --inventory-local local.csv vulns.csv       match against a local inventory table
    {{.appName}} --journal journal.csv vulns.csv             flag vulnerabilities already in the journal

Decisions are taken in this order: journal duplicates, priority rules, inventory candidates (left
undecided for an analyst), ordinary rules, and finally deny.
`, map[string]interface{}{
		"appName": internal.ApplicationName,
	}),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Dev.ProfileCPU && appConfig.Dev.ProfileMem {
			return fmt.Errorf("cannot profile CPU and memory simultaneously")
		}

		if appConfig.Dev.ProfileCPU {
			defer profile.Start(profile.CPUProfile).Stop()
		} else if appConfig.Dev.ProfileMem {
			defer profile.Start(profile.MemProfile).Stop()
		}

		return rootExec(cmd, args)
	},
}

func init() {
	setGlobalCliOptions()
	setRootFlags(rootCmd.Flags())
}

func setGlobalCliOptions() {
	// setup global CLI options (available on all CLI commands)
	rootCmd.PersistentFlags().StringVarP(&persistentOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&persistentOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress all logging output")
}

func setRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		"output", "o", "",
		fmt.Sprintf("report output formatter, formats=%v", presenter.Options),
	)

	flags.StringP(
		"template", "t", "",
		"specify the path to a Go template file ("+
			"requires 'template' output to be selected)")

	flags.StringP(
		"file", "", "",
		"file to write the report output to (default is STDOUT)",
	)

	flags.StringP(
		"sort-by", "", "",
		fmt.Sprintf("order of the results in the report, options=%v", models.SortStrategies()),
	)

	flags.IntP(
		"workers", "w", 0,
		"number of vulnerabilities triaged concurrently (default is the number of CPUs)",
	)

	flags.StringP(
		"inventory-local", "", "",
		"inventory table of the local site",
	)

	flags.StringP(
		"inventory-general", "", "",
		"organization-wide inventory table",
	)

	flags.StringP(
		"journal", "j", "",
		"journal table of previously triaged vulnerabilities",
	)

	flags.StringP(
		"responsible", "", "",
		"person triaging the batch, recorded in the report",
	)

	flags.StringP(
		"publication", "", "",
		"where the vulnerabilities were published, recorded in the report",
	)
}

// nolint:funlen
func bindRootConfigOptions(flags *pflag.FlagSet) error {
	if err := viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet")); err != nil {
		return err
	}

	bindings := map[string]string{
		"output":                  "output",
		"output-template-file":    "template",
		"file":                    "file",
		"sort-by":                 "sort-by",
		"workers":                 "workers",
		"input.inventory-local":   "inventory-local",
		"input.inventory-general": "inventory-general",
		"input.journal":           "journal",
		"report.responsible":      "responsible",
		"report.publication":      "publication",
	}

	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return err
		}
	}

	return nil
}

func rootExec(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		appConfig.Input.Vulnerabilities = args[0]
	}

	reporter, closer, err := reportWriter()
	defer func() {
		if err := closer(); err != nil {
			log.Warnf("unable to write to report destination: %+v", err)
		}
	}()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return eventLoop(
		startWorker(ctx),
		setupSignals(),
		eventSubscription,
		cancel,
		ui.Select(isVerbose(), appConfig.Quiet, reporter)...,
	)
}

func isVerbose() (result bool) {
	return appConfig.CliOptions.Verbosity > 0
}

// colorizeReport reports whether the report goes to a terminal that can show colors.
func colorizeReport() bool {
	return strings.TrimSpace(appConfig.File) == "" && term.IsTerminal(int(os.Stdout.Fd())) && color.SupportColor()
}

func startWorker(ctx context.Context) <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)

		presenterConfig, err := presenter.ValidatedConfig(appConfig.Output, appConfig.OutputTemplateFile, appConfig.SortBy,
			appConfig.Match.MinWordLength)
		if err != nil {
			errs <- err
			return
		}
		presenterConfig = presenterConfig.WithColor(colorizeReport())

		if appConfig.Input.Vulnerabilities == "" {
			errs <- fmt.Errorf("a vulnerability table is required (given as an argument or as input.vulnerabilities)")
			return
		}

		fs := afero.NewOsFs()

		engine, err := loadEngine(fs, true)
		if err != nil {
			errs <- err
			return
		}

		vulns, err := vulnerability.Load(fs, appConfig.Input.Vulnerabilities)
		if err != nil {
			errs <- fmt.Errorf("failed to load vulnerabilities: %w", err)
			return
		}

		analysis, err := vulntriage.Analyze(ctx, engine, vulns, vulntriage.AnalyzeOptions{
			Workers:     appConfig.Workers,
			Responsible: appConfig.Report.Responsible,
			Publication: appConfig.Report.Publication,
		})
		if err != nil {
			errs <- err
			return
		}

		bus.Publish(partybus.Event{
			Type:  event.TriageFinished,
			Value: presenter.GetPresenter(presenterConfig, *analysis, appConfig),
		})
	}()
	return errs
}
