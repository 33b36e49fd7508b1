package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("datefmt")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "datefmt",
		Short: "Parse and format date-time strings with declarative patterns",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log verbosity, repeatable")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
