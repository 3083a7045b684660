package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"repo-analyzer/src/controller"
	"repo-analyzer/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze <repo-path>",
		Short: "Analyze a repository",
		Long:  "Builds a file index, classifies the platform and reports dependencies, structure and build commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := args[0]

			util.Info("Analyzing repository: %s (timeout: %v)", repoPath, timeout)

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			analysis, err := analysisCtrl.Analyze(ctx, controller.AnalyzeRequest{
				RepoPath: repoPath,
			})
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}

				paths, err := reportCtrl.GenerateReports(analysis)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Printf("Report written to %s\n", path)
				}
			} else {
				outputFormat := format
				if outputFormat == "" {
					outputFormat = "json"
				}

				output, err := reportCtrl.GenerateToString(analysis, outputFormat)
				if err != nil {
					// Fallback to raw JSON
					data, _ := json.MarshalIndent(analysis, "", "  ")
					fmt.Println(string(data))
				} else {
					fmt.Println(output)
				}
			}

			// Print summary to stderr
			fmt.Fprintf(os.Stderr, "\nAnalysis complete:\n")
			fmt.Fprintf(os.Stderr, "  Platform: %s %s\n", analysis.Platform.PlatformType.Emoji(), analysis.Platform.PlatformType)
			fmt.Fprintf(os.Stderr, "  Evidence: %v\n", analysis.Platform.Evidence)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, markdown)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}
