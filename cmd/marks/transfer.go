package main

import (
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/manager"
	"github.com/arthur-debert/marks/pkg/output"
)

func newExportCmd() *cobra.Command {
	var formatName, outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(formatName)
			if err != nil {
				return err
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			content, err := output.Export(s.mgr, format)
			if err != nil {
				return err
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
					return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write %s", outFile)
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "xml", MsgFlagFormat)
	cmd.Flags().StringVarP(&outFile, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: MsgImportShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := etree.NewDocument()
			if err := doc.ReadFromFile(args[0]); err != nil {
				return errors.Wrapf(err, errors.ErrStoreParse, "failed to read %s", args[0])
			}
			root := doc.Root()
			if root == nil {
				return errors.Newf(errors.ErrStoreParse, "%s has no root element", args[0])
			}

			// Validate the incoming tree before touching the store
			staging := manager.New()
			staging.LoadState(root)
			if err := bookmarks.Walk(staging.Root(), func(n bookmarks.Node, depth int) error {
				return nil
			}); err != nil {
				return err
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			// Sibling ids must stay unique or slash paths turn
			// ambiguous, same rule add and mkdir enforce
			seen := make(map[string]bool)
			for _, el := range root.ChildElements() {
				if s.mgr.Root().HasChild(el.Tag) || seen[el.Tag] {
					return errors.Newf(errors.ErrNodeExists,
						"import would duplicate top-level node %q", el.Tag)
				}
				seen[el.Tag] = true
			}

			s.mgr.LoadState(root)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgImported, len(root.ChildElements()), args[0])
			return nil
		},
	}
}
