package main

import (
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/TheDarkDnKTv/mclib-extractor/internal/app"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/config"
	"github.com/TheDarkDnKTv/mclib-extractor/internal/logging"
)

// legacyNoDownload is the historical positional switch for --no-download.
const legacyNoDownload = "nodownload"

var errUnknownArgument = zerr.New("unknown argument")

// commonFlags are accepted by every command.
type commonFlags struct {
	configPath string
	dir        string
	profile    string
	verbose    bool
}

type extractFlags struct {
	dest       string
	workers    int
	noDownload bool
	manifest   string
}

func newRootCmd() *cobra.Command {
	var common commonFlags
	var extract extractFlags

	rootCmd := &cobra.Command{
		Use:   "mclib-extractor [nodownload]",
		Short: "Copy the libraries of a Minecraft launcher profile",
		Long: "mclib-extractor resolves the libraries of a launcher profile across its version " +
			"inheritance chain and copies them into libraries/ and natives/ of a destination directory.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          legacyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, &common, &extract)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&common.configPath, "config", "c", "",
		"Config file (default ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().StringVarP(&common.dir, "dir", "d", "", "Minecraft launcher directory")
	rootCmd.PersistentFlags().StringVarP(&common.profile, "profile", "p", "",
		"Profile key or index; prompts when empty")
	rootCmd.PersistentFlags().BoolVarP(&common.verbose, "verbose", "v", false, "Verbose output")

	addExtractFlags(rootCmd, &extract)

	extractCmd := &cobra.Command{
		Use:   "extract [nodownload]",
		Short: "Copy profile libraries into the destination (default command)",
		Args:  legacyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args, &common, &extract)
		},
	}
	addExtractFlags(extractCmd, &extract)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(newListCmd(&common))

	return rootCmd
}

func addExtractFlags(cmd *cobra.Command, f *extractFlags) {
	cmd.Flags().StringVarP(&f.dest, "dest", "o", "", "Destination directory")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Parallel library workers")
	cmd.Flags().BoolVar(&f.noDownload, "no-download", false, "Do not download libraries missing from the cache")
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "Extract the libraries listed in a manifest file")
}

func newListCmd(common *commonFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the resolved library manifest of a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, common)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return zerr.With(zerr.Wrap(err, "failed to create manifest file"), "path", output)
				}
				defer f.Close()
				w = f
			}

			a := app.New(cfg,
				app.WithInput(cmd.InOrStdin()),
				app.WithOutput(cmd.ErrOrStderr()),
				app.WithLogger(logging.New(cmd.ErrOrStderr(), common.verbose)),
			)
			return a.List(common.profile, w)
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Write the manifest to a file instead of stdout")
	return cmd
}

func runExtract(cmd *cobra.Command, args []string, common *commonFlags, f *extractFlags) error {
	cfg, err := loadConfig(cmd, common)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("dest") {
		cfg.Destination = f.dest
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if f.noDownload || slices.Contains(args, legacyNoDownload) {
		cfg.Download = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a := app.New(cfg,
		app.WithInput(cmd.InOrStdin()),
		app.WithOutput(cmd.OutOrStdout()),
		app.WithLogger(logging.New(cmd.ErrOrStderr(), common.verbose)),
	)
	return a.Extract(cmd.Context(), app.ExtractOptions{
		Profile:  common.profile,
		Manifest: f.manifest,
	})
}

func loadConfig(cmd *cobra.Command, common *commonFlags) (config.Config, error) {
	cfg, err := config.Load(common.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("dir") {
		cfg.MinecraftDir = common.dir
	}
	return cfg, nil
}

func legacyArgs(_ *cobra.Command, args []string) error {
	for _, arg := range args {
		if arg != legacyNoDownload {
			return zerr.With(errUnknownArgument, "argument", arg)
		}
	}
	return nil
}
