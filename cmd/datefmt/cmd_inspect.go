package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/datefmt/format"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pattern>",
		Short: "Dump the parser structure compiled from a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Compile(args[0])
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}
			fmt.Println(f.Structure())
			return nil
		},
	}
}
