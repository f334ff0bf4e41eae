package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/crosspath/pkg/ui/display"
)

func newBookmarkCmd(a *app) *cobra.Command {
	var native bool

	cmd := &cobra.Command{
		Use:   "bookmark [NAME]",
		Short: MsgBookmarkShort,
		Long:  MsgBookmarkLong,
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			cfg, err := a.loadConfig()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return cfg.BookmarkNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			m := a.ops.Materializer()

			if len(args) == 0 {
				list := &display.BookmarkList{Bookmarks: []display.Bookmark{}}
				for _, name := range cfg.BookmarkNames() {
					p := cfg.Paths[name]
					list.Bookmarks = append(list.Bookmarks, display.Bookmark{
						Name:   name,
						Path:   p.String(),
						Native: m.CurrentOS(p).String(),
					})
				}
				return a.render(cmd, list)
			}

			p, err := cfg.Bookmark(args[0])
			if err != nil {
				return err
			}
			value := p.String()
			if native {
				value = m.CurrentOS(p).String()
			}
			return a.render(cmd, &display.Value{Command: "bookmark", Input: args[0], Value: value})
		},
	}

	cmd.Flags().BoolVarP(&native, "native", "n", false, MsgFlagNative)
	return cmd
}
