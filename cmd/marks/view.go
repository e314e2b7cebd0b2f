package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/output"
	"github.com/arthur-debert/marks/pkg/search"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			if len(s.mgr.Root().Element().ChildElements()) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgEmptyTree)
				return nil
			}

			rendered, err := output.RenderTree(s.mgr.Root())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}

func newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: MsgFindShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			matches, err := search.Find(s.mgr.Root(), args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoMatches)
				return nil
			}

			for _, match := range matches {
				line := match.Path
				if b, ok := match.Node.(*bookmarks.Bookmark); ok {
					line = fmt.Sprintf("%s  %s", match.Path, output.URLStyle.Render(b.URL()))
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: MsgPreviewShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			rendered, err := output.RenderPreview(s.mgr)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
