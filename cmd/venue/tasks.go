package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/venue-sim/internal/cli"
	"github.com/Veraticus/venue-sim/internal/staff"
)

func tasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the task families staff can be given",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, cli.FormatTitle("Task families")); err != nil {
				return err
			}
			_, err := fmt.Fprint(out, cli.RenderTaskTable(staff.Presets()))
			return err
		},
	}
}
