package deps

import (
	"encoding/json"
	"fmt"
	"strings"

	"repo-analyzer/src/model"
	"repo-analyzer/src/service/index"
)

// Analyzer extracts raw dependency declarations from build manifests.
// It is a pure function of the index and the detected platform: any read or
// parse failure for an ecosystem degrades to that ecosystem being absent.
type Analyzer struct {
	idx *index.RepoIndex
}

// NewAnalyzer creates a dependency analyzer over a built index
func NewAnalyzer(idx *index.RepoIndex) *Analyzer {
	return &Analyzer{idx: idx}
}

// Analyze extracts dependencies for the ecosystems of the given platform.
// An ecosystem key is present only when its manifest yielded entries.
func (a *Analyzer) Analyze(platformType model.PlatformType) model.DependencyInfo {
	info := model.NewDependencyInfo()

	switch platformType {
	case model.PlatformJava:
		if mavenDeps := a.parsePomXML(); len(mavenDeps) > 0 {
			info.Java["maven"] = mavenDeps
		}
		if gradleDeps := a.parseGradleFiles(); len(gradleDeps) > 0 {
			info.Java["gradle"] = gradleDeps
		}
	case model.PlatformAndroid:
		if gradleDeps := a.parseGradleFiles(); len(gradleDeps) > 0 {
			info.Android["gradle"] = gradleDeps
		}
	case model.PlatformIos:
		if podDeps := a.parsePodfile(); len(podDeps) > 0 {
			info.Ios["cocoapods"] = podDeps
		}
	case model.PlatformAngular:
		if npmDeps := a.parsePackageJSON(); len(npmDeps) > 0 {
			info.Angular["npm"] = npmDeps
		}
	}

	return info
}

// parsePomXML reads only the first pom.xml by index order. Multi-module
// Maven repos keep dependencies in the root POM far more often than Gradle
// repos do, so aggregation is not worth the noise.
func (a *Analyzer) parsePomXML() []string {
	pomFiles := a.idx.FilesWithName("pom.xml")
	if len(pomFiles) == 0 {
		return nil
	}

	content, err := a.idx.ReadFile(pomFiles[0])
	if err != nil {
		return nil
	}

	var deps []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "<artifactId>") {
			deps = append(deps, trimmed)
		}
	}
	return deps
}

// parseGradleFiles aggregates dependency lines across every build.gradle
// and build.gradle.kts, concatenated in index traversal order.
func (a *Analyzer) parseGradleFiles() []string {
	gradleFiles := append([]string{}, a.idx.FilesWithName("build.gradle")...)
	gradleFiles = append(gradleFiles, a.idx.FilesWithName("build.gradle.kts")...)

	var deps []string
	for _, path := range gradleFiles {
		content, err := a.idx.ReadFile(path)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.Contains(trimmed, "implementation") ||
				strings.Contains(trimmed, "api") ||
				strings.Contains(trimmed, "testImplementation") {
				deps = append(deps, trimmed)
			}
		}
	}
	return deps
}

// parsePodfile reads only the first Podfile by index order
func (a *Analyzer) parsePodfile() []string {
	podfiles := a.idx.FilesWithName("Podfile")
	if len(podfiles) == 0 {
		return nil
	}

	content, err := a.idx.ReadFile(podfiles[0])
	if err != nil {
		return nil
	}

	var pods []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "pod ") {
			pods = append(pods, trimmed)
		}
	}
	return pods
}

// parsePackageJSON parses the first package.json as structured JSON and
// renders each entry of the dependencies object as "name: version",
// preserving document order.
func (a *Analyzer) parsePackageJSON() []string {
	packageFiles := a.idx.FilesWithName("package.json")
	if len(packageFiles) == 0 {
		return nil
	}

	content, err := a.idx.ReadFile(packageFiles[0])
	if err != nil {
		return nil
	}

	entries, err := orderedObjectEntries(content, "dependencies")
	if err != nil {
		return nil
	}

	deps := make([]string, 0, len(entries))
	for _, e := range entries {
		deps = append(deps, fmt.Sprintf("%s: %s", e.key, e.value))
	}
	return deps
}

type objectEntry struct {
	key   string
	value string
}

// orderedObjectEntries walks the JSON token stream and returns the entries
// of the named top-level object in document order. encoding/json maps would
// lose that order, so the decoder is driven manually.
func orderedObjectEntries(content, objectKey string) ([]objectEntry, error) {
	dec := json.NewDecoder(strings.NewReader(content))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected top-level object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", keyTok)
		}

		if key != objectKey {
			// Skip the value entirely
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := valTok.(json.Delim); !ok || delim != '{' {
			return nil, fmt.Errorf("%s is not an object", objectKey)
		}

		var entries []objectEntry
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, ok := nameTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected key in %s, got %v", objectKey, nameTok)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			value := string(raw)
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				value = s
			}
			entries = append(entries, objectEntry{key: name, value: value})
		}
		return entries, nil
	}

	return nil, nil
}
