package structure

import (
	"path/filepath"
	"sort"
	"strings"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
	"repo-analyzer/src/service/index"
	"repo-analyzer/src/util"
)

// Analyzer derives architecture, test and project structure plus build
// commands from the file index. Each method is a pure function of index
// and platform; rule tables live in tables.go.
type Analyzer struct {
	idx *index.RepoIndex
	cfg config.AnalysisConfig
}

// NewAnalyzer creates a structure analyzer over a built index
func NewAnalyzer(idx *index.RepoIndex, cfg config.AnalysisConfig) *Analyzer {
	return &Analyzer{idx: idx, cfg: cfg}
}

// AnalyzeArchitecture scans a bounded sample of source files for known
// framework markers and buckets them into architecture pattern groups.
func (a *Analyzer) AnalyzeArchitecture(platformType model.PlatformType) model.ArchitecturePatterns {
	patterns := model.ArchitecturePatterns{}

	sourceFiles := a.idx.FilesWithExtensions(sourceExtensions[platformType])
	limit := a.cfg.MaxSourceSamples
	if limit <= 0 || limit > len(sourceFiles) {
		limit = len(sourceFiles)
	}

	for _, path := range sourceFiles[:limit] {
		content, err := a.idx.ReadFile(path)
		if err != nil {
			continue
		}
		for _, rule := range contentPatterns {
			if !rule.appliesTo(platformType) {
				continue
			}
			if !containsAny(content, rule.needles) {
				continue
			}
			switch rule.group {
			case groupDependencyInjection:
				patterns.DependencyInjection = util.AddUnique(patterns.DependencyInjection, rule.name)
			case groupReactive:
				patterns.Reactive = util.AddUnique(patterns.Reactive, rule.name)
			case groupUIFramework:
				patterns.UIFramework = util.AddUnique(patterns.UIFramework, rule.name)
			}
		}
	}

	return patterns
}

func (p contentPattern) appliesTo(platformType model.PlatformType) bool {
	if len(p.platforms) == 0 {
		return true
	}
	for _, candidate := range p.platforms {
		if candidate == platformType {
			return true
		}
	}
	return false
}

func containsAny(content string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(content, needle) {
			return true
		}
	}
	return false
}

// AnalyzeTestStructure reports test directories, detected test frameworks
// and the applicable test patterns.
func (a *Analyzer) AnalyzeTestStructure(platformType model.PlatformType) model.TestStructure {
	return model.TestStructure{
		TestDirectories: a.findTestDirectories(),
		TestFrameworks:  a.detectTestFrameworks(platformType),
		TestPatterns:    determineTestPatterns(platformType),
	}
}

func (a *Analyzer) findTestDirectories() []string {
	seen := make(map[string]struct{})
	for _, path := range a.idx.Files() {
		parent := filepath.Dir(path)
		name := filepath.Base(parent)
		for _, testName := range testDirNames {
			if name == testName {
				seen[util.RelPath(a.idx.Root(), parent)] = struct{}{}
				break
			}
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func (a *Analyzer) detectTestFrameworks(platformType model.PlatformType) []model.TestFramework {
	needles := testFrameworkNeedles[platformType]
	if len(needles) == 0 {
		return nil
	}

	testFiles := a.findTestFiles(platformType)
	limit := a.cfg.MaxTestSamples
	if limit <= 0 || limit > len(testFiles) {
		limit = len(testFiles)
	}

	var frameworks []model.TestFramework
	seen := make(map[model.TestFramework]struct{})
	for _, path := range testFiles[:limit] {
		content, err := a.idx.ReadFile(path)
		if err != nil {
			continue
		}
		for _, rule := range needles {
			if _, ok := seen[rule.framework]; ok {
				continue
			}
			if containsAny(content, rule.needles) {
				seen[rule.framework] = struct{}{}
				frameworks = append(frameworks, rule.framework)
			}
		}
	}
	return frameworks
}

func (a *Analyzer) findTestFiles(platformType model.PlatformType) []string {
	patterns := testFilePatterns[platformType]
	if len(patterns) == 0 {
		return nil
	}

	var matched []string
	for _, path := range a.idx.Files() {
		slashPath := filepath.ToSlash(path)
		for _, pattern := range patterns {
			if strings.Contains(slashPath, pattern) {
				matched = append(matched, path)
				break
			}
		}
	}
	return matched
}

func determineTestPatterns(platformType model.PlatformType) []string {
	patterns := []string{"unit-tests"}
	if platformType == model.PlatformAndroid || platformType == model.PlatformIos {
		patterns = append(patterns, "ui-tests")
	}
	return patterns
}

// AnalyzeProjectStructure reports source, resource and config file layout
// as root-relative paths.
func (a *Analyzer) AnalyzeProjectStructure(platformType model.PlatformType) model.ProjectStructure {
	return model.ProjectStructure{
		SourceDirectories:   a.findMatchingDirs(sourceDirPatterns[platformType]),
		ResourceDirectories: a.findMatchingDirs(resourceDirPatterns[platformType]),
		ConfigFiles:         a.findConfigFiles(platformType),
	}
}

func (a *Analyzer) findMatchingDirs(patterns []string) []string {
	seen := make(map[string]struct{})
	for _, path := range a.idx.Files() {
		slashPath := filepath.ToSlash(path)
		for _, pattern := range patterns {
			if strings.Contains(slashPath, pattern) {
				seen[util.RelPath(a.idx.Root(), filepath.Dir(path))] = struct{}{}
				break
			}
		}
	}

	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

func (a *Analyzer) findConfigFiles(platformType model.PlatformType) []string {
	var configFiles []string
	for _, name := range configFileNames[platformType] {
		for _, path := range a.idx.FilesWithName(name) {
			configFiles = append(configFiles, util.RelPath(a.idx.Root(), path))
		}
	}
	return configFiles
}

// DetermineBuildCommands returns the command templates for the platform.
// Java resolves to maven or gradle commands based on which manifest exists.
func (a *Analyzer) DetermineBuildCommands(platformType model.PlatformType) model.BuildCommands {
	if platformType == model.PlatformJava {
		if a.idx.HasFile("pom.xml") {
			return javaMavenCommands
		}
		return javaGradleCommands
	}
	if commands, ok := buildCommandTemplates[platformType]; ok {
		return commands
	}
	return buildCommandTemplates[model.PlatformUnknown]
}
