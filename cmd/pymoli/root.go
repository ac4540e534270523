package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pymoli.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pymoli",
		Short: "Purchase analysis report for the Heroes of Pymoli storefront",
		Long: `pymoli summarises a table of storefront purchases.

It counts distinct players, breaks purchases down by gender and age bracket,
and ranks spenders and items by purchase count and total value.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
