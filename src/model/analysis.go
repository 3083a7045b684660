package model

// DependencyInfo holds raw dependency declarations per platform family.
// Each map goes from ecosystem name ("maven", "gradle", "cocoapods", "npm")
// to the declaration lines as they appeared in the manifest. A missing key
// means the ecosystem was not detected or its manifest yielded no entries.
type DependencyInfo struct {
	Java    map[string][]string `json:"java" yaml:"java"`
	Ios     map[string][]string `json:"ios" yaml:"ios"`
	Android map[string][]string `json:"android" yaml:"android"`
	Angular map[string][]string `json:"angular" yaml:"angular"`
}

// NewDependencyInfo returns a DependencyInfo with all families initialized
func NewDependencyInfo() DependencyInfo {
	return DependencyInfo{
		Java:    make(map[string][]string),
		Ios:     make(map[string][]string),
		Android: make(map[string][]string),
		Angular: make(map[string][]string),
	}
}

// ArchitecturePatterns lists framework usage detected from source samples
type ArchitecturePatterns struct {
	DependencyInjection []string `json:"dependency_injection" yaml:"dependency_injection"`
	Reactive            []string `json:"reactive" yaml:"reactive"`
	UIFramework         []string `json:"ui_framework" yaml:"ui_framework"`
	Architecture        []string `json:"architecture" yaml:"architecture"`
}

// TestStructure describes the repository's test layout
type TestStructure struct {
	TestDirectories []string        `json:"test_directories" yaml:"test_directories"`
	TestFrameworks  []TestFramework `json:"test_frameworks" yaml:"test_frameworks"`
	TestPatterns    []string        `json:"test_patterns" yaml:"test_patterns"`
}

// ProjectStructure describes source, resource and config layout
type ProjectStructure struct {
	SourceDirectories   []string `json:"source_directories" yaml:"source_directories"`
	ResourceDirectories []string `json:"resource_directories" yaml:"resource_directories"`
	ConfigFiles         []string `json:"config_files" yaml:"config_files"`
}

// BuildCommands holds the command templates for building and testing
type BuildCommands struct {
	MainBuild   string `json:"main_build" yaml:"main_build"`
	TestCompile string `json:"test_compile,omitempty" yaml:"test_compile,omitempty"`
	TestRun     string `json:"test_run" yaml:"test_run"`
}

// ProjectAnalysis is the complete analysis output. It is immutable once
// constructed and carries no reference back to the repository index.
// It deliberately has no timestamp: two runs over an unchanged tree must
// serialize identically.
type ProjectAnalysis struct {
	RepoPath             string               `json:"repo_path" yaml:"repo_path"`
	Platform             PlatformInfo         `json:"platform" yaml:"platform"`
	Dependencies         DependencyInfo       `json:"dependencies" yaml:"dependencies"`
	ArchitecturePatterns ArchitecturePatterns `json:"architecture_patterns" yaml:"architecture_patterns"`
	TestStructure        TestStructure        `json:"test_structure" yaml:"test_structure"`
	ProjectStructure     ProjectStructure     `json:"project_structure" yaml:"project_structure"`
	BuildCommands        BuildCommands        `json:"build_commands" yaml:"build_commands"`
}
