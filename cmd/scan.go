package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"a11yscanner/internal/config"
	"a11yscanner/internal/scanner"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintfFunc()  //nolint: gochecknoglobals
	errorColor   = color.New(color.FgRed, color.Bold).SprintfFunc()   //nolint: gochecknoglobals
	warningColor = color.New(color.FgYellow, color.Bold).SprintfFunc() //nolint: gochecknoglobals
	noticeColor  = color.New(color.FgBlue, color.Bold).SprintfFunc()  //nolint: gochecknoglobals
	successColor = color.New(color.FgGreen, color.Bold).SprintfFunc() //nolint: gochecknoglobals
)

func printHistory(record *domain.ScanHistoryRecord) {
	//nolint: forbidigo
	fmt.Println(headerColor("Scan %s completed at %s", record.ScanType, record.ScannedAt.Format("2006-01-02 15:04:05")))
	fmt.Printf("  items scanned: %d\n", record.ItemsScanned) //nolint: forbidigo
	if record.Total == 0 {
		fmt.Println(successColor("  no accessibility issues found")) //nolint: forbidigo

		return
	}
	fmt.Printf("  issues: %d\n", record.Total)                     //nolint: forbidigo
	fmt.Println(errorColor("    errors:   %d", record.Errors))     //nolint: forbidigo
	fmt.Println(warningColor("    warnings: %d", record.Warnings)) //nolint: forbidigo
	fmt.Println(noticeColor("    notices:  %d", record.Notices))   //nolint: forbidigo
}

// scanCommand runs one full scan in the foreground and prints its summary.
func scanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Runs a scan to completion and prints the summary",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			scanType, _ := cmd.Flags().GetString("type")
			maxItems, _ := cmd.Flags().GetInt("max-items")
			batchSize, _ := cmd.Flags().GetInt("batch-size")

			req := scanner.StartRequest{
				ScanType:  scanType,
				MaxItems:  maxItems,
				BatchSize: batchSize,
			}
			if cmd.Flags().Changed("exclude") {
				req.ExcludedTypes, _ = cmd.Flags().GetStringSlice("exclude")
			}

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := newServices(ctx, cfg, pgsql)

			current, err := svc.settings.Get(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not load settings", zap.Error(err))
			}

			record, err := svc.coordinator.RunToCompletion(ctx, req.ApplySettings(current.Scanner))
			if err != nil {
				logger.Fatal(ctx, "scan failed", zap.Error(err))
			}

			printHistory(record)
		},
	}

	cmd.Flags().String("type", string(domain.ScanTypeFull), "Scan type: full, images, headings or links")
	cmd.Flags().Int("max-items", 0, "Maximum number of content items to scan, 0 uses the stored setting")
	cmd.Flags().Int("batch-size", 0, "Content items per batch, 0 uses the stored setting")
	cmd.Flags().StringSlice("exclude", nil, "Content types to skip")

	return cmd
}
