package main

import (
	"errors"

	"github.com/spf13/cobra"

	"sortery/internal/config"
	"sortery/internal/domain"
	appErrors "sortery/internal/errors"
)

type rootFlags struct {
	configFile string
	extract    bool
	dryRun     bool
	verbose    bool
	tui        bool
}

type sortFlags struct {
	preserveName bool
	dateFormat   string
	dateType     string
	excludeType  string
	onlyType     string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "sortery [flags] SOURCE TARGET",
		Short: "Sort files into dated folders or extract a directory",
		Long: "Sortery moves files from SOURCE into TARGET. With --extract every entry of\n" +
			"SOURCE is moved up into TARGET. The sort command files everything under\n" +
			"SOURCE into TARGET/YYYY/MM, renamed from one of its timestamps.",
		Args:          cobra.RangeArgs(0, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.extract && flags.configFile == "" {
				return cmd.Help()
			}
			if flags.extract && flags.configFile != "" {
				return appErrors.Wrap(appErrors.InvalidConfig, "flags", "", errors.New("--extract cannot be combined with --config-file"))
			}
			cfg, err := flags.load(args)
			if err != nil {
				return err
			}
			return execute(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config-file", "c", "", "JSON configuration file")
	rootCmd.PersistentFlags().BoolVarP(&flags.extract, "extract", "e", false, "Move every entry of SOURCE into TARGET")
	rootCmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "d", false, "Print the planned moves without moving anything")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flags.tui, "tui", false, "Run with the interactive interface")

	rootCmd.AddCommand(newSortCommand(&flags))

	return rootCmd
}

func newSortCommand(root *rootFlags) *cobra.Command {
	var flags sortFlags

	cmd := &cobra.Command{
		Use:   "sort [flags] SOURCE TARGET",
		Short: "Sort files into TARGET/YYYY/MM by date",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.extract {
				return appErrors.Wrap(appErrors.InvalidConfig, "flags", "", errors.New("--extract cannot be combined with sort"))
			}
			cfg, err := root.load(args)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg.Sort); err != nil {
				return err
			}
			return execute(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVarP(&flags.preserveName, "preserve-name", "p", false, "Append the original file name to the date")
	cmd.Flags().StringVar(&flags.dateFormat, "date-format", domain.DefaultDateFormat, "strftime format of the new file name")
	cmd.Flags().StringVar(&flags.dateType, "date-type", "c", "Timestamp to sort by: c(reated), m(odified), a(ccessed) or e(xif)")
	cmd.Flags().StringVarP(&flags.excludeType, "exclude-type", "x", "", "Extensions to skip, separated by '-' or ','")
	cmd.Flags().StringVarP(&flags.onlyType, "only-type", "o", "", "Only sort these extensions, separated by '-' or ','")

	return cmd
}

// load builds the run configuration. Positional paths win over the config
// file, which wins over the environment.
func (f rootFlags) load(args []string) (config.Config, error) {
	cfg := config.Default()
	cfg.ConfigFile = f.configFile
	cfg.Extract = f.extract
	cfg.DryRun = f.dryRun
	cfg.Verbose = f.verbose
	cfg.TUI = f.tui
	if len(args) > 0 {
		cfg.SourceDir = args[0]
	}
	if len(args) > 1 {
		cfg.TargetDir = args[1]
	}

	if cfg.ConfigFile != "" {
		file, err := config.LoadFile(cfg.ConfigFile)
		if err != nil {
			return cfg, err
		}
		if err := cfg.ApplyFile(file); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()

	return cfg, cfg.Validate()
}

// apply overlays the sort flags given explicitly on the command line.
func (f sortFlags) apply(cmd *cobra.Command, opts *domain.SortOptions) error {
	changed := cmd.Flags().Changed

	if changed("date-type") {
		selector, err := domain.ParseTimestampSelector(f.dateType)
		if err != nil {
			return appErrors.Wrap(appErrors.InvalidConfig, "flags", "", err)
		}
		opts.Selector = selector
	}
	if changed("date-format") {
		opts.DateFormat = f.dateFormat
	}
	if changed("preserve-name") {
		opts.PreserveName = f.preserveName
	}
	if changed("exclude-type") {
		opts.Exclude = domain.ParseExtensionFilter(f.excludeType, true)
	}
	if changed("only-type") {
		opts.Only = domain.ParseExtensionFilter(f.onlyType, true)
	}
	return nil
}
