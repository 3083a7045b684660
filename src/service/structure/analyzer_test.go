package structure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
	"repo-analyzer/src/service/index"
)

func buildIndex(t *testing.T, files map[string]string) *index.RepoIndex {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	idx, err := index.Build(root)
	require.NoError(t, err)
	return idx
}

func newAnalyzer(idx *index.RepoIndex) *Analyzer {
	return NewAnalyzer(idx, config.DefaultConfig().Analysis)
}

func TestAnalyzeArchitectureDetectsPatterns(t *testing.T) {
	idx := buildIndex(t, map[string]string{
		"src/main/kotlin/App.kt":    "import org.koin.core\nimport kotlinx.coroutines.flow.Flow",
		"src/main/kotlin/Screen.kt": "import androidx.compose.runtime.Composable",
	})

	patterns := newAnalyzer(idx).AnalyzeArchitecture(model.PlatformAndroid)

	assert.Equal(t, []string{"koin"}, patterns.DependencyInjection)
	assert.Equal(t, []string{"coroutines"}, patterns.Reactive)
	assert.Equal(t, []string{"jetpack-compose"}, patterns.UIFramework)
}

func TestAnalyzeArchitectureAngularComponentOnlyOnAngular(t *testing.T) {
	files := map[string]string{
		"src/app/app.component.ts": "@Component({selector: 'app-root'})",
	}

	angular := newAnalyzer(buildIndex(t, files)).AnalyzeArchitecture(model.PlatformAngular)
	assert.Contains(t, angular.UIFramework, "angular")

	// The same content sampled on another platform must not fire the rule
	// (ts files are not sampled for Java at all)
	java := newAnalyzer(buildIndex(t, files)).AnalyzeArchitecture(model.PlatformJava)
	assert.Empty(t, java.UIFramework)
}

func TestAnalyzeArchitectureHonorsSampleLimit(t *testing.T) {
	idx := buildIndex(t, map[string]string{
		"src/A.kt": "plain",
		"src/B.kt": "import org.koin.core",
	})

	analyzer := NewAnalyzer(idx, config.AnalysisConfig{MaxSourceSamples: 1, MaxTestSamples: 20})
	patterns := analyzer.AnalyzeArchitecture(model.PlatformJava)

	// Only src/A.kt falls within the sample window
	assert.Empty(t, patterns.DependencyInjection)
}

func TestAnalyzeTestStructure(t *testing.T) {
	idx := buildIndex(t, map[string]string{
		"src/test/AppTest.java":         "import org.junit.Test;\nimport org.mockito.Mock;",
		"src/main/java/App.java":        "",
		"module/tests/HelperTests.java": "import org.junit.Test;",
	})

	tests := newAnalyzer(idx).AnalyzeTestStructure(model.PlatformJava)

	assert.Equal(t, []string{"module/tests", "src/test"}, tests.TestDirectories)
	assert.Equal(t, []model.TestFramework{model.TestFrameworkJUnit, model.TestFrameworkMockito}, tests.TestFrameworks)
	assert.Equal(t, []string{"unit-tests"}, tests.TestPatterns)
}

func TestTestPatternsIncludeUITestsOnMobile(t *testing.T) {
	idx := buildIndex(t, map[string]string{"README.md": ""})
	analyzer := newAnalyzer(idx)

	assert.Equal(t, []string{"unit-tests", "ui-tests"}, analyzer.AnalyzeTestStructure(model.PlatformAndroid).TestPatterns)
	assert.Equal(t, []string{"unit-tests", "ui-tests"}, analyzer.AnalyzeTestStructure(model.PlatformIos).TestPatterns)
	assert.Equal(t, []string{"unit-tests"}, analyzer.AnalyzeTestStructure(model.PlatformAngular).TestPatterns)
}

func TestAnalyzeProjectStructure(t *testing.T) {
	idx := buildIndex(t, map[string]string{
		"pom.xml":                        "<project/>",
		"src/main/java/com/app/App.java": "",
		"src/main/resources/app.yml":     "",
	})

	structure := newAnalyzer(idx).AnalyzeProjectStructure(model.PlatformJava)

	assert.Contains(t, structure.SourceDirectories, "src/main/java/com/app")
	assert.Contains(t, structure.ResourceDirectories, "src/main/resources")
	assert.Equal(t, []string{"pom.xml"}, structure.ConfigFiles)
}

func TestDetermineBuildCommands(t *testing.T) {
	mavenIdx := buildIndex(t, map[string]string{"pom.xml": "<project/>"})
	commands := newAnalyzer(mavenIdx).DetermineBuildCommands(model.PlatformJava)
	assert.Equal(t, "mvn compile", commands.MainBuild)
	assert.Equal(t, "mvn test", commands.TestRun)

	gradleIdx := buildIndex(t, map[string]string{"build.gradle": ""})
	commands = newAnalyzer(gradleIdx).DetermineBuildCommands(model.PlatformJava)
	assert.Equal(t, "./gradlew build", commands.MainBuild)

	emptyIdx := buildIndex(t, map[string]string{"README.md": ""})
	analyzer := newAnalyzer(emptyIdx)

	assert.Equal(t, "./gradlew assembleDebug", analyzer.DetermineBuildCommands(model.PlatformAndroid).MainBuild)
	assert.Equal(t, "xcodebuild -scheme <scheme> build", analyzer.DetermineBuildCommands(model.PlatformIos).MainBuild)
	assert.Equal(t, "npm run build", analyzer.DetermineBuildCommands(model.PlatformAngular).MainBuild)
	assert.Empty(t, analyzer.DetermineBuildCommands(model.PlatformAngular).TestCompile)
	assert.Equal(t, "make", analyzer.DetermineBuildCommands(model.PlatformUnknown).MainBuild)
}
