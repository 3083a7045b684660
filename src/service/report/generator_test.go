package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
)

func sampleAnalysis() *model.ProjectAnalysis {
	deps := model.NewDependencyInfo()
	deps.Angular["npm"] = []string{"@angular/core: ^17.0.0", "rxjs: ~7.8.0"}

	return &model.ProjectAnalysis{
		RepoPath: "/repos/web-app",
		Platform: model.PlatformInfo{
			PlatformType: model.PlatformAngular,
			Evidence:     []string{"angular.json"},
			Languages:    []model.Language{model.LanguageTypeScript},
			Frameworks:   []model.Framework{model.FrameworkNpm},
		},
		Dependencies: deps,
		TestStructure: model.TestStructure{
			TestFrameworks: []model.TestFramework{model.TestFrameworkJasmine},
			TestPatterns:   []string{"unit-tests"},
		},
		ProjectStructure: model.ProjectStructure{
			SourceDirectories: []string{"src/app"},
			ConfigFiles:       []string{"angular.json", "package.json"},
		},
		BuildCommands: model.BuildCommands{
			MainBuild: "npm run build",
			TestRun:   "npm test",
		},
	}
}

func TestGenerateJSONRoundTrips(t *testing.T) {
	generator := NewGenerator(config.DefaultConfig().Output)

	output, err := generator.Generate(sampleAnalysis(), "json")
	require.NoError(t, err)

	var decoded model.ProjectAnalysis
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, model.PlatformAngular, decoded.Platform.PlatformType)
	assert.Equal(t, []string{"@angular/core: ^17.0.0", "rxjs: ~7.8.0"}, decoded.Dependencies.Angular["npm"])
}

func TestGenerateYAML(t *testing.T) {
	generator := NewGenerator(config.DefaultConfig().Output)

	output, err := generator.Generate(sampleAnalysis(), "yaml")
	require.NoError(t, err)

	var decoded model.ProjectAnalysis
	require.NoError(t, yaml.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, model.PlatformAngular, decoded.Platform.PlatformType)
}

func TestGenerateMarkdownSections(t *testing.T) {
	generator := NewGenerator(config.DefaultConfig().Output)

	output, err := generator.Generate(sampleAnalysis(), "markdown")
	require.NoError(t, err)

	assert.True(t, strings.Contains(output, "**Platform:** ANGULAR"))
	assert.True(t, strings.Contains(output, "**Detected from:** angular.json"))
	assert.True(t, strings.Contains(output, "### Angular (npm)"))
	assert.True(t, strings.Contains(output, "- `@angular/core: ^17.0.0`"))
	assert.True(t, strings.Contains(output, "## Build Commands"))
	assert.True(t, strings.Contains(output, "`npm run build`"))
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	generator := NewGenerator(config.DefaultConfig().Output)

	_, err := generator.Generate(sampleAnalysis(), "xml")
	assert.Error(t, err)
}
