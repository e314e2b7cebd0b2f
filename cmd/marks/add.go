package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/fetch"
)

func newAddCmd() *cobra.Command {
	var dirPath, id string
	var fetchTitle bool

	cmd := &cobra.Command{
		Use:   "add <url> [name]",
		Short: MsgAddShort,
		Long:  MsgAddLong,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				if err := bookmarks.ValidateID(id); err != nil {
					return err
				}
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			url := args[0]
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			if name == "" && fetchTitle {
				title, err := fetch.New().Title(cmd.Context(), url)
				if err != nil {
					return err
				}
				name = title
			}
			if name == "" {
				name = url
			}

			parent, err := s.mgr.ResolveDir(dirPath)
			if err != nil {
				return err
			}

			b := bookmarks.NewBookmark(id, name, url)
			if parent.HasChild(b.ID()) {
				return errors.Newf(errors.ErrNodeExists,
					"directory %q already has a node %q", parent.ID(), b.ID())
			}

			s.mgr.AddNode(parent, b)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgAdded, name, parent.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirPath, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)
	cmd.Flags().BoolVar(&fetchTitle, "fetch-title", false, MsgFlagFetchTitle)

	return cmd
}

func newMkdirCmd() *cobra.Command {
	var dirPath, id string

	cmd := &cobra.Command{
		Use:   "mkdir <name>",
		Short: MsgMkdirShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id != "" {
				if err := bookmarks.ValidateID(id); err != nil {
					return err
				}
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			parent, err := s.mgr.ResolveDir(dirPath)
			if err != nil {
				return err
			}

			dir := bookmarks.NewDirectory(id, args[0])
			if parent.HasChild(dir.ID()) {
				return errors.Newf(errors.ErrNodeExists,
					"directory %q already has a node %q", parent.ID(), dir.ID())
			}

			s.mgr.AddNode(parent, dir)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgDirCreated, args[0], parent.ID())
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirPath, "dir", "d", "", MsgFlagDir)
	cmd.Flags().StringVar(&id, "id", "", MsgFlagID)

	return cmd
}
