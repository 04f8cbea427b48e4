// Package cli wires the idgen command tree: flag collection, configuration,
// logging and the output loop around the idgen generators.
package cli

import (
	"errors"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Lzww0608/idgen"
	"github.com/Lzww0608/idgen/internal/config"
	"github.com/Lzww0608/idgen/internal/log"
)

var errNoSubcommand = errors.New("a subcommand is required: uuid, ulid or oid")

// app carries state resolved once per invocation.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func (a *app) rootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "idgen",
		Short: "Generate UUIDs, ULIDs and ObjectIds",
		Long: "idgen generates unique identifiers: UUIDs (versions 1, 3, 4, 5, 6, 7, 8),\n" +
			"ULIDs and MongoDB ObjectIds, one per line on standard output.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = log.New(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
		RunE: func(*cobra.Command, []string) error {
			return errNoSubcommand
		},
	}
	// Replaces cobra's help subcommand; help is only available as --help.
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(*cobra.Command, []string) error {
			return errNoSubcommand
		},
	})

	pf := root.PersistentFlags()
	pf.Uint64P("num", "n", 1, "number of identifiers to generate")
	pf.String("log-level", "", "diagnostic log level: debug, info, warn, error")

	root.AddCommand(
		a.uuidCommand(),
		a.ulidCommand(),
		a.objectIDCommand(),
	)
	return root
}

// generate resolves req and writes cfg.Num identifiers to the command's
// standard output.
func (a *app) generate(cmd *cobra.Command, req idgen.Request) error {
	gen, err := idgen.NewGenerator(req)
	if err != nil {
		return err
	}

	a.logger.Debug().
		Str("kind", req.Kind()).
		Uint64("num", a.cfg.Num).
		Msg("generator resolved")

	return idgen.Emit(cmd.OutOrStdout(), gen, a.cfg.Num)
}

// Execute runs the command tree with args and returns the process exit
// code. Failures are reported on stderr; stdout receives identifiers only.
func Execute(version string, args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := a.rootCommand(version)
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		logger := a.logger
		if a.cfg == nil {
			logger = log.New(stderr, log.Config{Level: "warn", Pretty: true})
		}
		if logger.GetLevel() > zerolog.ErrorLevel {
			logger = logger.Level(zerolog.ErrorLevel)
		}
		event := logger.Error().Err(err)
		var argErr *idgen.ArgError
		if errors.As(err, &argErr) {
			event = event.Str("argument", "--"+argErr.Arg)
		}
		event.Msg("idgen failed")
		return 1
	}
	return 0
}
