package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clusterinthecloud/nodectl/internal/cloud"
)

// State returns the command that prints the provider lifecycle state of
// nodes, as the controller itself sees them.
func State() *cobra.Command {
	return &cobra.Command{
		Use:   "state <hostname>...",
		Short: "Show the provider lifecycle state of cluster nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime()
			if err != nil {
				return err
			}

			query := cloud.Query{Client: rt.cloud, Log: rt.log}
			for _, hostname := range args {
				state, err := query.CurrentState(cmd.Context(), rt.space.CompartmentID, hostname)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", hostname, state)
			}
			return nil
		},
	}
}
