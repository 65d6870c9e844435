package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freshpress/freshpress/client"
)

var (
	customerPage    int
	customerSize    int
	customerSearch  string
	customerName    string
	customerPhone   string
	customerEmail   string
	customerAddress string
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers, optionally filtered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		page, err := api.Customers(cmd.Context(), customerPage, customerSize, customerSearch)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tADDRESS")
		for _, c := range page.Content {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Address)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nPage %d/%d, %d customers total\n", page.Number+1, page.TotalPages, page.TotalElements)
		return nil
	},
}

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		created, err := api.CreateCustomer(cmd.Context(), client.CreateCustomerParams{
			Name:    customerName,
			Phone:   customerPhone,
			Email:   customerEmail,
			Address: customerAddress,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Created customer #%d %s\n", created.ID, created.Name)
		return nil
	},
}

func init() {
	customersListCmd.Flags().IntVar(&customerPage, "page", 0, "page number, zero-based")
	customersListCmd.Flags().IntVar(&customerSize, "size", 10, "page size")
	customersListCmd.Flags().StringVar(&customerSearch, "search", "", "filter by name")

	customersCreateCmd.Flags().StringVar(&customerName, "name", "", "customer name")
	customersCreateCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")
	customersCreateCmd.Flags().StringVar(&customerEmail, "email", "", "email address")
	customersCreateCmd.Flags().StringVar(&customerAddress, "address", "", "street address")
	_ = customersCreateCmd.MarkFlagRequired("name")
	_ = customersCreateCmd.MarkFlagRequired("phone")

	customersCmd.AddCommand(customersListCmd, customersCreateCmd)
	rootCmd.AddCommand(customersCmd)
}
