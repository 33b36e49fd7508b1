package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/datefmt/datetime"
	"github.com/ava12/datefmt/format"
)

func newParseCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "parse -p <pattern> <text>",
		Short: "Parse a date-time string and print the recovered fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.Cached(pattern)
			if err != nil {
				return fmt.Errorf("compile pattern: %w", err)
			}
			log.Debugf("compiled structure: %s", f.Structure())

			c, err := f.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			printFields(c)
			if d, err := c.Date(); err == nil {
				fmt.Println("date:", d)
			}
			if t, err := c.Time(); err == nil {
				fmt.Println("time:", t)
			}
			if o, err := c.Offset(); err == nil {
				fmt.Println("offset:", o)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "format pattern, e.g. \"yyyy-MM-dd'T'HH:mm:ss\"")
	cmd.MarkFlagRequired("pattern")

	return cmd
}

func printFields(c *datetime.Components) {
	fields := []struct {
		name  string
		value *int
	}{
		{"year", c.Year},
		{"month", c.Month},
		{"day of month", c.Day},
		{"day of week", c.DayOfWeek},
		{"hour", c.Hour},
		{"hour of am/pm", c.HourOfAmPm},
		{"am/pm marker", c.AmPm},
		{"minute", c.Minute},
		{"second", c.Second},
		{"nanosecond", c.Nanosecond},
		{"offset hours", c.OffsetHours},
		{"offset minutes", c.OffsetMinutes},
		{"offset seconds", c.OffsetSeconds},
	}
	for _, f := range fields {
		if f.value != nil {
			fmt.Printf("%s: %d\n", f.name, *f.value)
		}
	}
	if c.YearNegative != nil && *c.YearNegative {
		fmt.Println("year sign: -")
	}
	if c.OffsetNegative != nil && *c.OffsetNegative {
		fmt.Println("offset sign: -")
	}
}
