package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/ui/display"
)

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "normalize RAW",
		Short:   MsgNormalizeShort,
		Long:    MsgNormalizeLong,
		Example: MsgNormalizeExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Value{Command: "normalize", Input: args[0], Value: p.String()})
		},
	}
}

func newNativeCmd(a *app) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:     "native RAW",
		Short:   MsgNativeShort,
		Long:    MsgNativeLong,
		Example: MsgNativeExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := crosspath.ParseTarget(target)
			if err != nil {
				return err
			}
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			native := a.ops.Materializer().Render(p, t)
			return a.render(cmd, &display.Value{Command: "native", Input: args[0], Value: native.String()})
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "current", MsgFlagTarget)
	_ = cmd.RegisterFlagCompletionFunc("target", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"current", "posix", "windows"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info RAW",
		Short: MsgInfoShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, a.report(args[0], p))
		},
	}
}

// report collects everything known about p. Components that do not exist,
// such as the file name of "/", are left empty.
func (a *app) report(input string, p crosspath.Path) *display.PathReport {
	m := a.ops.Materializer()
	r := &display.PathReport{
		Input:     input,
		Canonical: p.String(),
		Posix:     m.Posix(p).String(),
		Windows:   m.Windows(p).String(),
		Current:   m.CurrentOS(p).String(),
		Absolute:  p.IsAbsolute(),
		Exists:    a.ops.Exists(p),
		IsFile:    a.ops.IsFile(p),
		IsDir:     a.ops.IsDir(p),
	}
	if name, err := m.FileName(p); err == nil {
		r.FileName = name
	}
	if stem, err := m.FileStem(p); err == nil {
		r.FileStem = stem
	}
	if ext, err := m.Extension(p); err == nil {
		r.Extension = ext
	}
	if parent, err := m.Parent(p); err == nil {
		r.Parent = parent.String()
	}
	return r
}

func newJoinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "join BASE ADDITION",
		Short: MsgJoinShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			joined, err := base.JoinRelative(args[1])
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Value{Command: "join", Input: args[0], Value: joined.String()})
		},
	}
}

func newShortCmd(a *app) *cobra.Command {
	var maxChars int

	cmd := &cobra.Command{
		Use:   "short RAW",
		Short: MsgShortShort,
		Long:  MsgShortLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max") {
				cfg, err := a.loadConfig()
				if err != nil {
					return err
				}
				maxChars = cfg.Display.MaxChars
			}
			short, err := p.ShortString(maxChars)
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Value{Command: "short", Input: args[0], Value: short})
		},
	}

	cmd.Flags().IntVarP(&maxChars, "max", "m", 0, MsgFlagMax)
	return cmd
}

func newExtCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ext RAW NEWEXT",
		Short: MsgExtShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			replaced, err := p.ReplaceExtension(args[1])
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Value{Command: "ext", Input: args[0], Value: replaced.String()})
		},
	}
}
