package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/datefmt/datetime"
	"github.com/ava12/datefmt/format"
)

func newFormatCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "format -p <pattern> <iso-date-time>",
		Short: "Render an ISO 8601 date-time with another pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Cached(pattern)
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}

			c, err := parseISO(args[0])
			if err != nil {
				return err
			}

			text, err := f.Format(c)
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			fmt.Println(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "format pattern, e.g. \"EEE, dd MMM yyyy\"")
	cmd.MarkFlagRequired("pattern")

	return cmd
}

// parseISO accepts a date-time, a date, or a time in ISO 8601 notation.
func parseISO(input string) (*datetime.Components, error) {
	for _, f := range []*format.Format{format.ISODateTime, format.ISODate, format.ISOTime} {
		c, err := f.Parse(input)
		if err == nil {
			return c, nil
		}
		log.Debugf("input %q does not match %s", input, f.Structure())
	}
	return nil, fmt.Errorf("%q is not an ISO 8601 date, time, or date-time", input)
}
