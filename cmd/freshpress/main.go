// freshpress is the FreshPress laundry management CLI. It serves the API,
// manages the database, and doubles as an admin client for the running
// service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freshpress/freshpress/client"
	"github.com/freshpress/freshpress/config"

	// Register migrations and seeders.
	_ "github.com/freshpress/freshpress/database/migrations"
	_ "github.com/freshpress/freshpress/database/seeders"
)

var rootCmd = &cobra.Command{
	Use:   "freshpress",
	Short: "FreshPress laundry management service and admin client",
	Long: `FreshPress runs the laundry management API and administers it.

Server commands (serve, migrate, seed) operate on the local database.
Admin commands (login, customers, orders, services, stats) talk to a
running API over HTTP using the session stored in the token file.`,
	SilenceUsage: true,
}

// newAPIClient builds an SDK client from the configured base URL and the
// persisted session token.
func newAPIClient() (*client.Client, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	tokenPath := config.TokenFile()
	if tokenPath == "" {
		var err error
		tokenPath, err = client.DefaultTokenPath()
		if err != nil {
			return nil, err
		}
	}

	session, err := client.NewSession(tokenPath)
	if err != nil {
		return nil, err
	}

	return client.New(config.APIBaseURL(), session), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
