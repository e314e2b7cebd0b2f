package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: MsgRmShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			node, err := s.mgr.Resolve(args[0])
			if err != nil {
				return err
			}
			parent := node.Parent()
			if parent == nil {
				return errors.New(errors.ErrInvalidInput, MsgCannotRmRoot)
			}

			s.mgr.RemoveNode(parent, node)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgRemoved, args[0])
			return nil
		},
	}
}

func newMvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <path> <dest-dir>",
		Short: MsgMvShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			node, err := s.mgr.Resolve(args[0])
			if err != nil {
				return err
			}
			parent := node.Parent()
			if parent == nil {
				return errors.New(errors.ErrInvalidInput, "cannot move the root directory")
			}

			dest, err := s.mgr.ResolveDir(args[1])
			if err != nil {
				return err
			}
			if dest.HasChild(node.ID()) {
				return errors.Newf(errors.ErrNodeExists,
					"directory %q already has a node %q", dest.ID(), node.ID())
			}

			// A directory must not end up inside its own subtree
			for _, ancestor := range dest.TreePath() {
				if ancestor.Element() == node.Element() {
					return errors.Newf(errors.ErrInvalidInput,
						"cannot move %q into its own subtree", args[0])
				}
			}

			s.mgr.RemoveNode(parent, node)
			s.mgr.AddNode(dest, node)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgMoved, args[0], args[1])
			return nil
		},
	}
}

func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: MsgRenameShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			node, err := s.mgr.Resolve(args[0])
			if err != nil {
				return err
			}
			if isRoot(node) {
				return errors.New(errors.ErrInvalidInput, "cannot rename the root directory")
			}

			old := node.DisplayName()
			node.SetDisplayName(args[1])
			s.mgr.UpdateNode(node)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgRenamed, old, args[1])
			return nil
		},
	}
}

// isRoot reports whether the node is the tree root
func isRoot(node bookmarks.Node) bool {
	_, ok := node.(*bookmarks.Directory)
	return ok && node.Parent() == nil
}
