package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/search"
)

func newFindCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "find TERM FILE...",
		Short: "Print every match of TERM as path:line:col: text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			opt := searchOptions(cfg)
			q := search.QueryFor(args[0], opt)
			out := cmd.OutOrStdout()

			for _, path := range args[1:] {
				b := buffer.New("", buffer.Options{})
				if err := b.LoadFile(path); err != nil {
					return err
				}
				matches, err := search.Scan(b, q, opt)
				if err != nil {
					return err
				}
				for _, mt := range matches {
					fmt.Fprintf(out, "%s:%d:%d: %s\n", path, mt.Row+1, mt.Col+1, b.Line(mt.Row))
				}
			}
			return nil
		},
	}
}

func newReplaceCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "replace TERM REPLACEMENT FILE...",
		Short: "Replace every match of TERM in place and print counts",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.settings(cmd)
			if err != nil {
				return err
			}
			term, repl := args[0], args[1]
			out := cmd.OutOrStdout()

			for _, path := range args[2:] {
				b := buffer.New("", buffer.Options{})
				if err := b.LoadFile(path); err != nil {
					return err
				}
				s := search.New(searchOptions(cfg))
				n := s.ReplaceAll(b, term, repl)
				if err := s.Err(); err != nil {
					return err
				}
				if n > 0 {
					if err := b.Save(); err != nil {
						return err
					}
				}
				fmt.Fprintf(out, "%s: %d replacement(s)\n", path, n)
			}
			return nil
		},
	}
}
