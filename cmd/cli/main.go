package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pocketledger-cli",
		Short: "PocketLedger CLI tool",
		Long:  `A command line interface for interacting with the PocketLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the PocketLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "List sources and the combined balance",
		Run: func(cmd *cobra.Command, args []string) {
			listSources()
		},
	}
	rootCmd.AddCommand(sourcesCmd)

	var page, pageSize int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List the transaction history",
		Run: func(cmd *cobra.Command, args []string) {
			listHistory(page, pageSize)
		},
	}
	historyCmd.Flags().IntVar(&page, "page", 1, "Page number")
	historyCmd.Flags().IntVar(&pageSize, "page-size", 10, "Rows per page")
	rootCmd.AddCommand(historyCmd)

	receivablesCmd := &cobra.Command{
		Use:   "receivables",
		Short: "List open receivables",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/receivables")
		},
	}
	rootCmd.AddCommand(receivablesCmd)

	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Check that balances match the transaction log",
		Run: func(cmd *cobra.Command, args []string) {
			reconcile()
		},
	}
	rootCmd.AddCommand(reconcileCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func listSources() {
	result := getJSON("/api/sources")

	if total, ok := result["total"].(string); ok {
		fmt.Printf("Total balance: %s\n", total)
	}
}

func listHistory(page, pageSize int) {
	path := fmt.Sprintf("/api/history?page=%d&page_size=%d", page, pageSize)
	result := getJSON(path)

	if pagination, ok := result["pagination"].(map[string]any); ok {
		fmt.Printf("Page %v of %v (%v records)\n",
			pagination["page"], pagination["total_pages"], pagination["total_records"])
	}
}

func reconcile() {
	result := getJSON("/api/ledger/reconcile")

	if consistent, ok := result["consistent"].(bool); ok {
		if consistent {
			fmt.Println("Reconciliation PASSED")
		} else {
			fmt.Printf("Reconciliation FAILED (%v mismatches)\n", result["mismatches"])
			os.Exit(1)
		}
	}
}

// getJSON fetches a path, pretty-prints the body, and returns the decoded
// object when the body is a JSON object.
func getJSON(path string) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	formatted, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(formatted))

	result, _ := pretty.(map[string]any)
	return result
}
