// Command setup prepares the infrastructure the API expects.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clientportal/internal/config"
	"clientportal/internal/domain/templates"
	"clientportal/internal/infrastructure/database"
	"clientportal/internal/logger"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "setup",
		Short:         "Provision and inspect the client portal backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(createTableCmd())
	rootCmd.AddCommand(listTemplatesCmd())
	return rootCmd
}

func createTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-table",
		Short: "Create the DynamoDB table and enable item TTL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if table, _ := cmd.Flags().GetString("table"); table != "" {
				cfg.DynamoDB.Table = table
			}
			log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			timeout, _ := cmd.Flags().GetDuration("timeout")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
			if err != nil {
				return fmt.Errorf("failed to connect to dynamodb: %w", err)
			}
			if err := database.EnsureTable(ctx, client, cfg.DynamoDB.Table, log); err != nil {
				return err
			}
			log.Info("[setup][dynamodb] table ready", zap.String("table", cfg.DynamoDB.Table))
			return nil
		},
	}
	cmd.Flags().String("table", "", "Table name (defaults to dynamodb.table)")
	cmd.Flags().Duration("timeout", 3*time.Minute, "Maximum time to wait for the table")
	return cmd
}

func listTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-templates",
		Short: "Print the built-in questionnaire templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return printTemplates(cmd.OutOrStdout(), templates.BuiltIn(), asJSON)
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")
	return cmd
}

func printTemplates(w io.Writer, reg *templates.Registry, asJSON bool) error {
	list := reg.List()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQUESTIONS")
	for _, t := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", t.ID, t.Name, len(t.Questions))
	}
	return tw.Flush()
}
