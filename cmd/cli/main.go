package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fletero/backoffice/internal/infrastructure/config"
	"github.com/fletero/backoffice/internal/infrastructure/postgres"
)

var (
	baseURL string
	session string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice-cli",
		Short: "Backoffice CLI tool",
		Long:  `A command line interface for operating the backoffice ledger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the backoffice API")
	rootCmd.PersistentFlags().StringVar(&session, "session", "", "Session cookie value for authenticated endpoints")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Ledger commands
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency [localidad]",
		Short: "Check caja consistency against recorded movements",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			localidad := ""
			if len(args) > 0 {
				localidad = args[0]
			}
			checkConsistency(localidad)
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(ledgerCmd)

	// Migration commands
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}

	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(false)
		},
	}

	migrateDownCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(true)
		},
	}

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkConsistency(localidad string) {
	endpoint := baseURL + "/api/cajas/consistency"
	if localidad != "" {
		endpoint += "?localidad=" + url.QueryEscape(localidad)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: session})
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result struct {
		Localidad   string `json:"localidad"`
		Total       string `json:"total"`
		MovementSum string `json:"movement_sum"`
		Difference  string `json:"difference"`
		Consistent  bool   `json:"consistent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Localidad:    %s\n", result.Localidad)
	fmt.Printf("Caja total:   %s\n", result.Total)
	fmt.Printf("Movement sum: %s\n", result.MovementSum)
	if result.Consistent {
		fmt.Println("Consistency check PASSED")
		return
	}
	fmt.Printf("Consistency check FAILED (difference: %s)\n", result.Difference)
	os.Exit(1)
}

func runMigrations(down bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if down {
		err = postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
	} else {
		err = postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	}
	if err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations applied")
}
