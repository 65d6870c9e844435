package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authFullName string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := api.Login(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}
		if err := api.Session().SetToken(resp.Token); err != nil {
			return err
		}

		fmt.Printf("Logged in as %s (%s)\n", resp.FullName, resp.Email)
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an admin account and persist its session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}

		resp, err := api.Register(cmd.Context(), authEmail, authPassword, authFullName)
		if err != nil {
			return err
		}
		if err := api.Session().SetToken(resp.Token); err != nil {
			return err
		}

		fmt.Printf("Registered %s (%s)\n", resp.FullName, resp.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := api.Session().Clear(); err != nil {
			return err
		}

		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	registerCmd.Flags().StringVar(&authEmail, "email", "", "account email")
	registerCmd.Flags().StringVar(&authPassword, "password", "", "account password")
	registerCmd.Flags().StringVar(&authFullName, "name", "", "full name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd)
}
