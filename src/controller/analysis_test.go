package controller

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repo-analyzer/src/config"
	"repo-analyzer/src/model"
)

func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func TestAnalyzeJavaRepository(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"pom.xml": `<project>
  <artifactId>demo</artifactId>
  <dependencies>
    <dependency>
      <artifactId>junit</artifactId>
    </dependency>
  </dependencies>
</project>`,
		"src/main/java/App.java":    "public class App {}",
		"src/test/AppTest.java":     "import org.junit.Test;",
	})

	ctrl := NewAnalysisController(config.DefaultConfig())
	analysis, err := ctrl.Analyze(context.Background(), AnalyzeRequest{RepoPath: root})
	require.NoError(t, err)

	assert.Equal(t, model.PlatformJava, analysis.Platform.PlatformType)
	assert.Equal(t, []string{"pom.xml"}, analysis.Platform.Evidence)
	assert.Equal(t, []string{
		"<artifactId>demo</artifactId>",
		"<artifactId>junit</artifactId>",
	}, analysis.Dependencies.Java["maven"])
	assert.Equal(t, "mvn compile", analysis.BuildCommands.MainBuild)
	assert.Contains(t, analysis.TestStructure.TestFrameworks, model.TestFrameworkJUnit)
}

func TestAnalyzeFailsOnMissingRoot(t *testing.T) {
	ctrl := NewAnalysisController(config.DefaultConfig())
	_, err := ctrl.Analyze(context.Background(), AnalyzeRequest{
		RepoPath: filepath.Join(t.TempDir(), "missing"),
	})
	assert.Error(t, err)
}

func TestAnalyzeRespectsCancelledContext(t *testing.T) {
	root := writeRepo(t, map[string]string{"pom.xml": "<project/>"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ctrl := NewAnalysisController(config.DefaultConfig())
	_, err := ctrl.Analyze(ctx, AnalyzeRequest{RepoPath: root})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	root := writeRepo(t, map[string]string{
		"angular.json": "{}",
		"package.json": `{"dependencies":{"@angular/core":"^17.0.0","rxjs":"~7.8.0"}}`,
		"src/app/app.component.ts":      "@Component({})",
		"src/app/app.component.spec.ts": "describe('app', () => {});",
	})

	ctrl := NewAnalysisController(config.DefaultConfig())

	first, err := ctrl.Analyze(context.Background(), AnalyzeRequest{RepoPath: root})
	require.NoError(t, err)
	second, err := ctrl.Analyze(context.Background(), AnalyzeRequest{RepoPath: root})
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestAnalyzeUnknownRepository(t *testing.T) {
	root := writeRepo(t, map[string]string{"notes.txt": "nothing to see"})

	ctrl := NewAnalysisController(config.DefaultConfig())
	analysis, err := ctrl.Analyze(context.Background(), AnalyzeRequest{RepoPath: root})
	require.NoError(t, err)

	assert.Equal(t, model.PlatformUnknown, analysis.Platform.PlatformType)
	assert.Empty(t, analysis.Dependencies.Java)
	assert.Empty(t, analysis.Dependencies.Ios)
	assert.Empty(t, analysis.Dependencies.Android)
	assert.Empty(t, analysis.Dependencies.Angular)
	assert.Equal(t, "make", analysis.BuildCommands.MainBuild)
}
