package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freshpress/freshpress/client"
)

var (
	serviceName     string
	serviceCategory string
	servicePrice    float64
	serviceUnit     string
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the pricing catalog",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalog services",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		items, err := api.Services(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tUNIT")
		for _, s := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n", s.ID, s.Name, s.Category, s.PricePerUnit, s.UnitType)
		}
		return w.Flush()
	},
}

var servicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a service to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		created, err := api.CreateService(cmd.Context(), client.CreateServiceParams{
			Name:         serviceName,
			Category:     serviceCategory,
			PricePerUnit: servicePrice,
			UnitType:     serviceUnit,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created service #%d %s\n", created.ID, created.Name)
		return nil
	},
}

func init() {
	servicesCreateCmd.Flags().StringVar(&serviceName, "name", "", "service name")
	servicesCreateCmd.Flags().StringVar(&serviceCategory, "category", "", "category (WASH, DRY_CLEAN, IRON, FOLD, WASH_AND_IRON, SPECIAL_CARE)")
	servicesCreateCmd.Flags().Float64Var(&servicePrice, "price", 0, "price per unit")
	servicesCreateCmd.Flags().StringVar(&serviceUnit, "unit", "", "unit type (KG, PIECE, LOAD)")
	_ = servicesCreateCmd.MarkFlagRequired("name")
	_ = servicesCreateCmd.MarkFlagRequired("category")
	_ = servicesCreateCmd.MarkFlagRequired("price")
	_ = servicesCreateCmd.MarkFlagRequired("unit")

	servicesCmd.AddCommand(servicesListCmd, servicesCreateCmd)
	rootCmd.AddCommand(servicesCmd)
}
