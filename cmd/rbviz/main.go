// Command rbviz replays a script of add/remove/get operations against a
// persistent red-black tree and prints any of the resulting versions, either
// as text or as a Graphviz digraph.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var (
		script   string
		format   string
		version  int
		logLevel string
	)
	cmd := &cobra.Command{
		Use:   "rbviz",
		Short: "Replay tree operations and render a version of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return errors.Wrap(err, "invalid log level")
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).With().Timestamp().Logger()

			in := cmd.InOrStdin()
			if script != "" && script != "-" {
				f, err := os.Open(script)
				if err != nil {
					return errors.Wrapf(err, "opening script %s", script)
				}
				defer f.Close()
				in = f
			}

			return run(in, cmd.OutOrStdout(), log, format, version)
		},
	}
	cmd.Flags().StringVar(&script, "script", "-", "operation script to replay; - reads stdin")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text|dot)")
	cmd.Flags().IntVar(&version, "version", -1, "version to render, 0 is the empty tree; negative renders the latest")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	return cmd
}

func run(in io.Reader, out io.Writer, log zerolog.Logger, format string, version int) error {
	ops, err := parseScript(in)
	if err != nil {
		return err
	}
	versions := replay(ops, log)

	if version < 0 {
		version = len(versions) - 1
	}
	if version >= len(versions) {
		return errors.Errorf("version %d does not exist, the script produced %d", version, len(versions)-1)
	}
	tree := versions[version]
	log.Info().Int("version", version).Int("size", tree.Size()).Msg("rendering")

	switch format {
	case "text":
		_, err = fmt.Fprintln(out, tree.String())
	case "dot":
		_, err = fmt.Fprint(out, tree.Dot())
	default:
		return errors.Errorf("unknown format %q", format)
	}
	return errors.Wrap(err, "writing output")
}
