package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fitness-tracker/internal/api"
	"fitness-tracker/internal/config"
	"fitness-tracker/internal/logging"
	"fitness-tracker/internal/models"
	"fitness-tracker/internal/parser"
	"fitness-tracker/internal/training"

	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *slog.Logger
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fitness-tracker",
		Short: "Fitness Tracker - workout metrics from sensor packages",
		Long: `A CLI tool that turns raw sensor packages for running, walking and
swimming workouts into distance, average speed and calories burned,
either from files, from the command line or over a REST API.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(computeCmd(cfg))
	rootCmd.AddCommand(reportCmd(cfg))
	rootCmd.AddCommand(typesCmd())
	rootCmd.AddCommand(serverCmd(cfg))

	return rootCmd
}

// computeReport validates, resolves and summarises one package. Reports
// with +Inf or NaN metrics are rejected so that table and JSON output agree.
func computeReport(pkg models.WorkoutPackage, validate bool) (models.Report, error) {
	if validate {
		if errs := parser.ValidatePackage(&pkg); len(errs) > 0 {
			return models.Report{}, fmt.Errorf("invalid workout: %s", strings.Join(errs, "; "))
		}
	}

	w, err := training.ResolvePackage(pkg)
	if err != nil {
		return models.Report{}, err
	}

	report := training.NewReport(pkg.WorkoutType, w)
	if err := training.CheckFinite(report.Summary); err != nil {
		return models.Report{}, err
	}
	return report, nil
}

// printReports writes reports as summary lines or as JSON
func printReports(w io.Writer, reports []models.Report, format string) error {
	for _, r := range reports {
		if err := training.CheckFinite(r.Summary); err != nil {
			return fmt.Errorf("report %s: %w", r.ID, err)
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case "table":
		for _, r := range reports {
			fmt.Fprintln(w, r.Message)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// demoCmd runs the reference sensor packages
func demoCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Compute summaries for the sample sensor packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			var reports []models.Report
			for _, pkg := range parser.SamplePackages() {
				report, err := computeReport(pkg, true)
				if err != nil {
					return err
				}
				reports = append(reports, report)
			}
			return printReports(cmd.OutOrStdout(), reports, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	return cmd
}

// computeCmd computes a single workout given on the command line
func computeCmd(cfg config.Config) *cobra.Command {
	var outputFormat string
	var validate bool

	cmd := &cobra.Command{
		Use:   "compute CODE VALUE...",
		Short: "Compute a summary for one workout",
		Long: `Compute a summary for one workout. CODE is one of SWM, RUN or WLK and
the values follow the field layout shown by 'fitness-tracker types'.`,
		Example: "  fitness-tracker compute RUN 15000 1 75",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parser.ParseValues(args[1:])
			if err != nil {
				return err
			}
			pkg := models.WorkoutPackage{WorkoutType: args[0], Data: values}

			report, err := computeReport(pkg, validate)
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), []models.Report{report}, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().BoolVarP(&validate, "validate", "v", cfg.Validate, "Validate values before computing")
	return cmd
}

// reportCmd computes summaries for package files
func reportCmd(cfg config.Config) *cobra.Command {
	var format string
	var outputFormat string
	var validate bool

	cmd := &cobra.Command{
		Use:   "report [file...]",
		Short: "Compute summaries for sensor package files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := parser.NewParser(format, logger)
			var reports []models.Report
			totalErrors := 0

			for _, file := range args {
				logger.Debug("processing file", "file", file)

				pkgs, err := p.ParseFile(file)
				if err != nil {
					logger.Error("failed to parse file", "file", file, "error", err)
					totalErrors++
					continue
				}

				for i, pkg := range pkgs {
					report, err := computeReport(pkg, validate)
					if err != nil {
						logger.Warn("skipping package", "file", file, "index", i, "error", err)
						totalErrors++
						continue
					}
					reports = append(reports, report)
				}
			}

			if err := printReports(cmd.OutOrStdout(), reports, outputFormat); err != nil {
				return err
			}
			logger.Info("report finished", "workouts", len(reports), "errors", totalErrors)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", cfg.InputFormat, "File format (csv, json, log)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().BoolVarP(&validate, "validate", "v", cfg.Validate, "Validate packages before computing")
	return cmd
}

// typesCmd lists the recognized workout types
func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List workout type codes and their data fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-15s %s\n", "Code", "Name", "Fields")
			for _, t := range training.Types() {
				fmt.Fprintf(out, "%-6s %-15s %s\n", t.Code, t.Name, strings.Join(t.Fields, ","))
			}
			return nil
		},
	}
}

// serverCmd starts the REST API server
func serverCmd(cfg config.Config) *cobra.Command {
	var addr string
	var validate bool
	var maxBatch int

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the REST API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer(api.Options{Validate: validate, MaxBatch: maxBatch}, logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("fitness tracker API listening", "addr", addr, "validate", validate)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.HTTPAddress, "Listen address")
	cmd.Flags().BoolVarP(&validate, "validate", "v", cfg.Validate, "Reject packages with invalid values")
	cmd.Flags().IntVar(&maxBatch, "max-batch", cfg.MaxBatch, "Maximum packages per batch request")
	return cmd
}
