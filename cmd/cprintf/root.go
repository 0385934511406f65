package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bjaus/cfmt"
	"github.com/bjaus/cfmt/internal/argv"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	level  *slog.LevelVar
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		level:  new(slog.LevelVar),
		stdout: stdout,
		stderr: stderr,
	}
	a.log = newLogger(stderr, a.level)
	setDefaults(a.v)

	root := &cobra.Command{
		Use:   "cprintf FORMAT [ARG...]",
		Short: "Format text like C's printf",
		Long: `cprintf renders FORMAT with the given operands using C printf semantics.

Operands are typed by the conversion that consumes them: integer
conversions accept decimal, 0x hex, 0 octal and 'c character constants,
floating point conversions accept anything strconv.ParseFloat does, and
%s, %q and %c take the operand text.

Examples:
  cprintf '%-8s|%#06x|%+.2f\n' id 16 3.14159
  cprintf -n '%*d' 6 42
  cprintf check testdata/*.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			if err := loadConfig(a.v, cfgFile); err != nil {
				return err
			}
			if err := setLevel(a.level, a.v.GetString(keyLogLevel)); err != nil {
				return err
			}
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Debug("loaded config", "file", used)
			}
			return nil
		},
		RunE: a.runFormat,
	}
	root.Flags().SetInterspersed(false)
	root.Flags().BoolP(keyNewline, "n", false, "append a newline to the output")
	addPersistentFlags(root.PersistentFlags())
	_ = a.v.BindPFlag(keyNewline, root.Flags().Lookup(keyNewline))
	_ = a.v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup(keyLogLevel))

	root.AddCommand(a.newCheckCmd())
	return root
}

func (a *app) runFormat(_ *cobra.Command, args []string) error {
	t, err := cfmt.Parse(args[0])
	if err != nil {
		return err
	}
	vals, err := argv.Coerce(t, args[1:])
	if err != nil {
		return err
	}
	out, err := t.Render(vals...)
	if err != nil {
		return err
	}
	if a.v.GetBool(keyNewline) {
		out += "\n"
	}
	a.log.Debug("rendered", "format", args[0], "operands", len(vals), "bytes", len(out))
	_, err = io.WriteString(a.stdout, out)
	return err
}
