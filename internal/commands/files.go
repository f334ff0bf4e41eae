package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/crosspath/pkg/crosspath"
	"github.com/arthur-debert/crosspath/pkg/errors"
	"github.com/arthur-debert/crosspath/pkg/ui/display"
)

// paths parses every argument as a Path
func paths(args []string) ([]crosspath.Path, error) {
	out := make([]crosspath.Path, 0, len(args))
	for _, arg := range args {
		p, err := crosspath.New(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat PATH",
		Short: MsgCatShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			content, err := a.ops.ReadToString(p)
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Value{Command: "cat", Input: args[0], Value: content})
		},
	}
}

func newWriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write PATH [TEXT]",
		Short: MsgWriteShort,
		Long:  MsgWriteLong,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}

			var content string
			if len(args) == 2 {
				content = args[1]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.ErrIO, "failed to read standard input")
				}
				content = string(data)
			}

			if err := a.ops.WriteStrToFile(p, content); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "write",
				Path:    p.String(),
				Message: fmt.Sprintf(MsgWroteFormat, len(content), p),
			})
		},
	}
}

func newMkdirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir PATH",
		Short: MsgMkdirShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			if err := a.ops.CreateDirAll(p); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "mkdir",
				Path:    p.String(),
				Message: fmt.Sprintf(MsgCreatedFormat, p),
			})
		},
	}
}

func newRmCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "rm PATH",
		Short: MsgRmShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := crosspath.New(args[0])
			if err != nil {
				return err
			}
			if recursive {
				err = a.ops.RemoveDirAll(p)
			} else {
				err = a.ops.RemoveFile(p)
			}
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "rm",
				Path:    p.String(),
				Message: fmt.Sprintf(MsgRemovedFormat, p),
			})
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	return cmd
}

func newCpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cp SRC DST",
		Short: MsgCpShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := paths(args)
			if err != nil {
				return err
			}
			if err := a.ops.CopyFileToFile(ps[0], ps[1]); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "cp",
				Path:    ps[1].String(),
				Message: fmt.Sprintf(MsgCopiedFormat, ps[0], ps[1]),
			})
		},
	}
}

func newMvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv SRC DST",
		Short: MsgMvShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := paths(args)
			if err != nil {
				return err
			}
			if err := a.ops.RenameOrMove(ps[0], ps[1]); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "mv",
				Path:    ps[1].String(),
				Message: fmt.Sprintf(MsgMovedFormat, ps[0], ps[1]),
			})
		},
	}
}

func newExtractCmd(a *app) *cobra.Command {
	var opts crosspath.ExtractOptions

	cmd := &cobra.Command{
		Use:   "extract ARCHIVE DIR",
		Short: MsgExtractShort,
		Long:  MsgExtractLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := paths(args)
			if err != nil {
				return err
			}
			if opts.MaxSize < 0 {
				return errors.Newf(errors.ErrInvalidInput, "--max-size must not be negative, got %d", opts.MaxSize)
			}
			if err := a.ops.DecompressTarGzWithOptions(ps[0], ps[1], opts); err != nil {
				return err
			}
			return a.render(cmd, &display.Message{
				Command: "extract",
				Path:    ps[1].String(),
				Message: fmt.Sprintf(MsgExtractedFormat, ps[0], ps[1]),
			})
		},
	}

	cmd.Flags().Int64Var(&opts.MaxSize, "max-size", 0, MsgFlagMaxSize)
	cmd.Flags().BoolVar(&opts.PreserveFileMode, "preserve-mode", false, MsgFlagPreserveMode)
	return cmd
}
