package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/parkgen/pkg/generator"
)

func (a *app) generatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generators",
		Short: "List available record generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %-8s %s\n", "NAME", "DEFAULT", "DESCRIPTION")
			for _, name := range generator.List() {
				g, err := generator.Get(name, generator.Options{})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-12s %-8d %s\n", name, g.DefaultCount(), g.Description())
			}
			return nil
		},
	}
}
