package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sghaida/typealias/alias"
)

// errCycles is returned by check when at least one alias chain is circular.
var errCycles = errors.New("circular aliases found")

// options holds the persistent flags shared by every subcommand.
type options struct {
	file    string
	verbose bool
	prune   bool
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "aliasctl:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "aliasctl",
		Short:         "Inspect and validate alias registries",
		Long:          `aliasctl loads alias registrations from a YAML file and resolves, lists or checks them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "aliases.yaml", "YAML file with alias registrations")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every registration to stderr")
	root.PersistentFlags().BoolVar(&opts.prune, "prune", false, "Drop stale reverse-index entries when an alias is re-registered")

	root.AddCommand(
		newResolveCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
	)
	return root
}

// load builds a registry from the file named by opts.
func load(cmd *cobra.Command, opts *options) (*alias.Registry, error) {
	level := zerolog.InfoLevel
	if opts.verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Str("file", opts.file).Logger()

	regOpts := []alias.Option{alias.WithLogger(logger)}
	if opts.prune {
		regOpts = append(regOpts, alias.WithStaleBucketPruning())
	}

	cfg, err := alias.LoadConfig(opts.file)
	if err != nil {
		return nil, err
	}
	reg := alias.New(regOpts...)
	if err := cfg.Apply(reg); err != nil {
		return nil, err
	}
	logger.Debug().Int("aliases", len(cfg.Aliases)).Msg("registry loaded")
	return reg, nil
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Resolve names to their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := load(cmd, opts)
			if err != nil {
				return err
			}

			var failed error
			for _, name := range args {
				canonical, err := reg.Resolve(name)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					failed = err
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", name, canonical)
			}
			return failed
		},
	}
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every alias and the name it points at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := load(cmd, opts)
			if err != nil {
				return err
			}

			m := reg.AliasMap()
			for _, a := range slices.Sorted(maps.Keys(m)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", a, m[a])
			}
			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report circular alias chains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := load(cmd, opts)
			if err != nil {
				return err
			}

			cycles := 0
			for _, a := range slices.Sorted(maps.Keys(reg.AliasMap())) {
				_, err := reg.Resolve(a)
				var cyc alias.CircularReferenceError
				if errors.As(err, &cyc) {
					fmt.Fprintf(cmd.OutOrStdout(), "cycle: %s (detected at %s)\n", a, cyc.Name)
					cycles++
				}
			}
			if cycles > 0 {
				return fmt.Errorf("%w: %d", errCycles, cycles)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
