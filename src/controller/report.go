package controller

import (
	"os"
	"path/filepath"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
	"repo-analyzer/src/service/report"
	"repo-analyzer/src/util"
)

// ReportController handles report generation
type ReportController struct {
	cfg *config.Config
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{cfg: cfg}
}

// GenerateReports writes reports in all configured formats and returns the
// written file paths.
func (c *ReportController) GenerateReports(analysis *model.ProjectAnalysis) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Output.Formats), c.cfg.Output.Formats)
	generator := report.NewGenerator(c.cfg.Output)
	var outputPaths []string

	for _, format := range c.cfg.Output.Formats {
		output, err := generator.Generate(analysis, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(analysis.RepoPath, format)

		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString generates a report to a string
func (c *ReportController) GenerateToString(analysis *model.ProjectAnalysis, format string) (string, error) {
	generator := report.NewGenerator(c.cfg.Output)
	return generator.Generate(analysis, format)
}

func (c *ReportController) getOutputPath(repoPath, format string) string {
	ext := format
	switch format {
	case "markdown":
		ext = "md"
	case "yml":
		ext = "yaml"
	}

	filename := filepath.Base(repoPath) + "-analysis." + ext
	return filepath.Join(c.cfg.Output.OutputDir, filename)
}
