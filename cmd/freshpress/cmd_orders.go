package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/freshpress/freshpress/client"
)

var (
	orderPage     int
	orderSize     int
	orderStatus   string
	orderCustomer string
	orderNotes    string
	orderItems    []string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Manage orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		page, err := api.Orders(cmd.Context(), orderPage, orderSize, orderStatus)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCUSTOMER\tSTATUS\tITEMS\tTOTAL")
		for _, o := range page.Content {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n", o.ID, o.Customer.Name, o.Status, len(o.Items), o.TotalAmount)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nPage %d/%d, %d orders total\n", page.Number+1, page.TotalPages, page.TotalElements)
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order with its line items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		api, err := newAPIClient()
		if err != nil {
			return err
		}

		o, err := api.Order(cmd.Context(), uint(id))
		if err != nil {
			return err
		}

		fmt.Printf("Order #%d  %s  customer: %s  total: %.2f\n", o.ID, o.Status, o.Customer.Name, o.TotalAmount)
		if o.Notes != "" {
			fmt.Printf("Notes: %s\n", o.Notes)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SERVICE\tQTY\tSUBTOTAL")
		for _, item := range o.Items {
			fmt.Fprintf(w, "%s\t%d\t%.2f\n", item.ServiceItem.Name, item.Quantity, item.Subtotal)
		}
		return w.Flush()
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an order from --item service-id:quantity pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		draft := &client.OrderDraft{CustomerID: orderCustomer, Notes: orderNotes}
		for _, spec := range orderItems {
			serviceID, qty, _ := strings.Cut(spec, ":")

			draft.AddItem()
			idx := len(draft.Items) - 1
			if err := draft.UpdateItem(idx, client.ItemFieldService, serviceID); err != nil {
				return err
			}
			if err := draft.UpdateItem(idx, client.ItemFieldQuantity, qty); err != nil {
				return err
			}
		}

		o, err := draft.Submit(cmd.Context(), api)
		if err != nil {
			return err
		}

		fmt.Printf("Created order #%d, total %.2f\n", o.ID, o.TotalAmount)
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Move an order to a new status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id %q", args[0])
		}

		api, err := newAPIClient()
		if err != nil {
			return err
		}

		o, err := api.UpdateOrderStatus(cmd.Context(), uint(id), strings.ToUpper(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Order #%d is now %s\n", o.ID, o.Status)
		return nil
	},
}

func init() {
	ordersListCmd.Flags().IntVar(&orderPage, "page", 0, "page number, zero-based")
	ordersListCmd.Flags().IntVar(&orderSize, "size", 10, "page size")
	ordersListCmd.Flags().StringVar(&orderStatus, "status", "", "filter by status")

	ordersCreateCmd.Flags().StringVar(&orderCustomer, "customer", "", "customer id")
	ordersCreateCmd.Flags().StringVar(&orderNotes, "notes", "", "order notes")
	ordersCreateCmd.Flags().StringArrayVar(&orderItems, "item", nil, "line item as service-id:quantity, repeatable")
	_ = ordersCreateCmd.MarkFlagRequired("customer")
	_ = ordersCreateCmd.MarkFlagRequired("item")

	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd, ordersCreateCmd, ordersStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
