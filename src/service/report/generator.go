package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
	"repo-analyzer/src/util"
)

// Generator serializes a ProjectAnalysis in various formats
type Generator struct {
	cfg config.OutputConfig
}

// NewGenerator creates a new report generator
func NewGenerator(cfg config.OutputConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders the analysis in the specified format
func (g *Generator) Generate(analysis *model.ProjectAnalysis, format string) (string, error) {
	util.Debug("Generating report in %s format", format)
	switch format {
	case "json":
		return g.generateJSON(analysis)
	case "yaml", "yml":
		return g.generateYAML(analysis)
	case "markdown", "md":
		return g.generateMarkdown(analysis)
	default:
		util.Warn("Unsupported report format requested: %s", format)
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (g *Generator) generateJSON(analysis *model.ProjectAnalysis) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateYAML(analysis *model.ProjectAnalysis) (string, error) {
	data, err := yaml.Marshal(analysis)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (g *Generator) generateMarkdown(analysis *model.ProjectAnalysis) (string, error) {
	var sb strings.Builder

	platform := analysis.Platform
	sb.WriteString(fmt.Sprintf("# %s Project Analysis\n\n", platform.PlatformType.Emoji()))
	sb.WriteString(fmt.Sprintf("**Repository:** %s\n", analysis.RepoPath))
	sb.WriteString(fmt.Sprintf("**Platform:** %s\n\n", strings.ToUpper(string(platform.PlatformType))))

	if len(platform.Evidence) > 0 {
		sb.WriteString("**Detected from:** ")
		sb.WriteString(strings.Join(platform.Evidence, ", "))
		sb.WriteString("\n\n")
	}

	if len(platform.Languages) > 0 {
		sb.WriteString("**Languages:** ")
		sb.WriteString(joinLanguages(platform.Languages))
		sb.WriteString("\n")
	}
	if len(platform.Frameworks) > 0 {
		sb.WriteString("**Frameworks:** ")
		sb.WriteString(joinFrameworks(platform.Frameworks))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	g.writeDependencies(&sb, analysis.Dependencies)
	g.writeArchitecture(&sb, analysis.ArchitecturePatterns)
	g.writeTestStructure(&sb, analysis.TestStructure)
	g.writeProjectStructure(&sb, analysis.ProjectStructure)
	g.writeBuildCommands(&sb, analysis.BuildCommands)

	return sb.String(), nil
}

func (g *Generator) writeDependencies(sb *strings.Builder, deps model.DependencyInfo) {
	families := []struct {
		name string
		m    map[string][]string
	}{
		{"Java", deps.Java},
		{"iOS", deps.Ios},
		{"Android", deps.Android},
		{"Angular", deps.Angular},
	}

	wroteHeader := false
	for _, family := range families {
		for _, ecosystem := range []string{"maven", "gradle", "cocoapods", "npm"} {
			entries, ok := family.m[ecosystem]
			if !ok {
				continue
			}
			if !wroteHeader {
				sb.WriteString("## Dependencies\n\n")
				wroteHeader = true
			}
			sb.WriteString(fmt.Sprintf("### %s (%s)\n\n", family.name, ecosystem))
			for _, entry := range entries {
				sb.WriteString(fmt.Sprintf("- `%s`\n", entry))
			}
			sb.WriteString("\n")
		}
	}
}

func (g *Generator) writeArchitecture(sb *strings.Builder, patterns model.ArchitecturePatterns) {
	if len(patterns.DependencyInjection) == 0 && len(patterns.Reactive) == 0 &&
		len(patterns.UIFramework) == 0 && len(patterns.Architecture) == 0 {
		return
	}

	sb.WriteString("## Architecture Patterns\n\n")
	if len(patterns.DependencyInjection) > 0 {
		sb.WriteString(fmt.Sprintf("- **Dependency Injection:** %s\n", strings.Join(patterns.DependencyInjection, ", ")))
	}
	if len(patterns.Reactive) > 0 {
		sb.WriteString(fmt.Sprintf("- **Reactive:** %s\n", strings.Join(patterns.Reactive, ", ")))
	}
	if len(patterns.UIFramework) > 0 {
		sb.WriteString(fmt.Sprintf("- **UI Framework:** %s\n", strings.Join(patterns.UIFramework, ", ")))
	}
	if len(patterns.Architecture) > 0 {
		sb.WriteString(fmt.Sprintf("- **Architecture:** %s\n", strings.Join(patterns.Architecture, ", ")))
	}
	sb.WriteString("\n")
}

func (g *Generator) writeTestStructure(sb *strings.Builder, tests model.TestStructure) {
	sb.WriteString("## Test Structure\n\n")
	if len(tests.TestFrameworks) > 0 {
		names := make([]string, len(tests.TestFrameworks))
		for i, fw := range tests.TestFrameworks {
			names[i] = string(fw)
		}
		sb.WriteString(fmt.Sprintf("- **Frameworks:** %s\n", strings.Join(names, ", ")))
	}
	if len(tests.TestDirectories) > 0 {
		sb.WriteString(fmt.Sprintf("- **Directories:** %s\n", strings.Join(tests.TestDirectories, ", ")))
	}
	if len(tests.TestPatterns) > 0 {
		sb.WriteString(fmt.Sprintf("- **Patterns:** %s\n", strings.Join(tests.TestPatterns, ", ")))
	}
	sb.WriteString("\n")
}

func (g *Generator) writeProjectStructure(sb *strings.Builder, structure model.ProjectStructure) {
	sb.WriteString("## Project Structure\n\n")
	if len(structure.SourceDirectories) > 0 {
		sb.WriteString(fmt.Sprintf("- **Source:** %s\n", strings.Join(structure.SourceDirectories, ", ")))
	}
	if len(structure.ResourceDirectories) > 0 {
		sb.WriteString(fmt.Sprintf("- **Resources:** %s\n", strings.Join(structure.ResourceDirectories, ", ")))
	}
	if len(structure.ConfigFiles) > 0 {
		sb.WriteString(fmt.Sprintf("- **Config files:** %s\n", strings.Join(structure.ConfigFiles, ", ")))
	}
	sb.WriteString("\n")
}

func (g *Generator) writeBuildCommands(sb *strings.Builder, commands model.BuildCommands) {
	sb.WriteString("## Build Commands\n\n")
	sb.WriteString(fmt.Sprintf("- **Build:** `%s`\n", commands.MainBuild))
	if commands.TestCompile != "" {
		sb.WriteString(fmt.Sprintf("- **Test compile:** `%s`\n", commands.TestCompile))
	}
	sb.WriteString(fmt.Sprintf("- **Test:** `%s`\n", commands.TestRun))
}

func joinLanguages(languages []model.Language) string {
	names := make([]string, len(languages))
	for i, l := range languages {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func joinFrameworks(frameworks []model.Framework) string {
	names := make([]string, len(frameworks))
	for i, f := range frameworks {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
