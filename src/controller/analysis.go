package controller

import (
	"context"
	"time"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
	"repo-analyzer/src/service/deps"
	"repo-analyzer/src/service/index"
	"repo-analyzer/src/service/platform"
	"repo-analyzer/src/service/structure"
	"repo-analyzer/src/util"
)

// AnalysisController orchestrates the analysis pipeline: one index build,
// then platform detection, dependency extraction and structure analysis
// over that shared read-only index.
type AnalysisController struct {
	cfg *config.Config
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	return &AnalysisController{cfg: cfg}
}

// AnalyzeRequest represents a request to analyze a repository
type AnalyzeRequest struct {
	RepoPath string
}

// Analyze runs the full analysis pipeline. The result depends only on the
// repository's on-disk state: two runs over an unchanged tree produce the
// same report. The context is checked between phases; the phases themselves
// are synchronous.
func (c *AnalysisController) Analyze(ctx context.Context, req AnalyzeRequest) (*model.ProjectAnalysis, error) {
	startTime := time.Now()
	util.Info("Starting analysis for repository: %s", req.RepoPath)

	idx, err := index.Build(req.RepoPath)
	if err != nil {
		util.Error("Index build failed: %v", err)
		return nil, err
	}
	util.Debug("Indexed %d files", len(idx.Files()))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	platformInfo := platform.NewDetector(idx).Detect()
	util.Info("Detected platform: %s (evidence: %v)", platformInfo.PlatformType, platformInfo.Evidence)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dependencies := deps.NewAnalyzer(idx).Analyze(platformInfo.PlatformType)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	structureAnalyzer := structure.NewAnalyzer(idx, c.cfg.Analysis)
	analysis := &model.ProjectAnalysis{
		RepoPath:             req.RepoPath,
		Platform:             platformInfo,
		Dependencies:         dependencies,
		ArchitecturePatterns: structureAnalyzer.AnalyzeArchitecture(platformInfo.PlatformType),
		TestStructure:        structureAnalyzer.AnalyzeTestStructure(platformInfo.PlatformType),
		ProjectStructure:     structureAnalyzer.AnalyzeProjectStructure(platformInfo.PlatformType),
		BuildCommands:        structureAnalyzer.DetermineBuildCommands(platformInfo.PlatformType),
	}

	util.Info("Analysis complete (took %v)", time.Since(startTime))
	return analysis, nil
}
