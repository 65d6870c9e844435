package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		stats, err := api.Stats(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total orders\t%d\n", stats.TotalOrders)
		fmt.Fprintf(w, "Pending orders\t%d\n", stats.PendingOrders)
		fmt.Fprintf(w, "Processing orders\t%d\n", stats.ProcessingOrders)
		fmt.Fprintf(w, "Ready orders\t%d\n", stats.ReadyOrders)
		fmt.Fprintf(w, "Delivered orders\t%d\n", stats.DeliveredOrders)
		fmt.Fprintf(w, "Total customers\t%d\n", stats.TotalCustomers)
		fmt.Fprintf(w, "Total revenue\t%.2f\n", stats.TotalRevenue)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
