// Command dlist exercises the dlist container from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/graxinc/dlist"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string

	root := &cobra.Command{
		Use:          "dlist",
		Short:        "Exercise the dlist container",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&format, "format", "text", "output format: text, json or yaml")

	root.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Sort then reverse a fixed list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				l := dlist.New(-4, 4, 1, 0, -3, 18, 5)
				out := cmd.OutOrStdout()

				dlist.Sort(l)
				if err := write(out, format, l); err != nil {
					return err
				}
				l.Reverse()
				if err := write(out, format, l); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out, "size =", l.Len())
				return err
			},
		},
		listCmd("sort", "Sort integers ascending", &format, dlist.Sort[int]),
		listCmd("reverse", "Reverse integers", &format, (*dlist.List[int]).Reverse),
	)
	return root
}

func listCmd(use, short string, format *string, op func(*dlist.List[int])) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [int...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseInts(args)
			if err != nil {
				return err
			}
			op(l)
			return write(cmd.OutOrStdout(), *format, l)
		},
	}
}

func parseInts(args []string) (*dlist.List[int], error) {
	l := dlist.New[int]()
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", a, err)
		}
		l.PushBack(v)
	}
	return l, nil
}

func write(w io.Writer, format string, l *dlist.List[int]) error {
	switch format {
	case "text":
		for v := range l.All() {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	case "json":
		return json.NewEncoder(w).Encode(l)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(l); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
