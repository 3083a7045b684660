package platform

import (
	"strings"

	"repo-analyzer/src/model"
	"repo-analyzer/src/service/index"
)

// Detector classifies a repository's platform from its file index
type Detector struct {
	idx *index.RepoIndex
}

// NewDetector creates a platform detector over a built index
func NewDetector(idx *index.RepoIndex) *Detector {
	return &Detector{idx: idx}
}

// rule is a single classification step. check returns the marker files that
// fired, or nil when the rule does not apply.
type rule struct {
	platform model.PlatformType
	check    func(d *Detector) []string
}

// classificationRules is the fixed precedence order for platform detection.
// The first rule with evidence wins; ties between simultaneously present
// markers are resolved by this order, not by counting.
var classificationRules = []rule{
	{model.PlatformIos, (*Detector).iosMarkers},
	{model.PlatformAndroid, (*Detector).androidMarkers},
	{model.PlatformAngular, (*Detector).angularMarkers},
	{model.PlatformJava, (*Detector).javaMarkers},
}

// Detect classifies the repository and reports which markers triggered the
// decision alongside detected languages and frameworks.
func (d *Detector) Detect() model.PlatformInfo {
	platformType := model.PlatformUnknown
	var evidence []string

	for _, r := range classificationRules {
		if markers := r.check(d); len(markers) > 0 {
			platformType = r.platform
			evidence = markers
			break
		}
	}

	return model.PlatformInfo{
		PlatformType: platformType,
		Evidence:     evidence,
		Languages:    d.detectLanguages(platformType),
		Frameworks:   d.detectFrameworks(platformType),
	}
}

func (d *Detector) iosMarkers() []string {
	var markers []string
	if d.idx.HasPathPattern(".xcodeproj") {
		markers = append(markers, ".xcodeproj")
	}
	if d.idx.HasPathPattern(".xcworkspace") {
		markers = append(markers, ".xcworkspace")
	}
	if d.idx.HasFile("Podfile") {
		markers = append(markers, "Podfile")
	}
	return markers
}

func (d *Detector) androidMarkers() []string {
	var markers []string
	if d.idx.HasFile("AndroidManifest.xml") {
		markers = append(markers, "AndroidManifest.xml")
	}
	if name, ok := d.androidGradlePlugin(); ok {
		markers = append(markers, name)
	}
	return markers
}

func (d *Detector) angularMarkers() []string {
	if d.idx.HasFile("angular.json") {
		return []string{"angular.json"}
	}
	if d.idx.HasFile("package.json") && d.hasAngularInPackageJSON() {
		return []string{"package.json (@angular)"}
	}
	return nil
}

func (d *Detector) javaMarkers() []string {
	var markers []string
	if d.idx.HasFile("pom.xml") {
		markers = append(markers, "pom.xml")
	}
	if d.idx.HasFile("build.gradle") {
		markers = append(markers, "build.gradle")
	}
	return markers
}

// androidGradlePlugin scans gradle build files for an Android plugin id
func (d *Detector) androidGradlePlugin() (string, bool) {
	gradleFiles := append([]string{}, d.idx.FilesWithName("build.gradle")...)
	gradleFiles = append(gradleFiles, d.idx.FilesWithName("build.gradle.kts")...)

	for _, path := range gradleFiles {
		content, err := d.idx.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.Contains(content, "com.android.application") ||
			strings.Contains(content, "com.android.library") ||
			strings.Contains(content, "com.android.test") {
			return "build.gradle (com.android plugin)", true
		}
	}
	return "", false
}

func (d *Detector) hasAngularInPackageJSON() bool {
	packageFiles := d.idx.FilesWithName("package.json")
	if len(packageFiles) == 0 {
		return false
	}
	content, err := d.idx.ReadFile(packageFiles[0])
	if err != nil {
		return false
	}
	return strings.Contains(content, "@angular/core") || strings.Contains(content, "@angular/cli")
}

func (d *Detector) detectLanguages(platformType model.PlatformType) []model.Language {
	var languages []model.Language

	switch platformType {
	case model.PlatformIos:
		if d.idx.HasExtension("swift") {
			languages = append(languages, model.LanguageSwift)
		}
		if d.idx.HasExtension("m") || d.idx.HasExtension("h") {
			languages = append(languages, model.LanguageObjectiveC)
		}
	case model.PlatformAndroid, model.PlatformJava:
		if d.idx.HasExtension("kt") {
			languages = append(languages, model.LanguageKotlin)
		}
		if d.idx.HasExtension("java") {
			languages = append(languages, model.LanguageJava)
		}
	case model.PlatformAngular:
		languages = append(languages, model.LanguageTypeScript)
		if d.idx.HasExtension("js") {
			languages = append(languages, model.LanguageJavaScript)
		}
	}

	return languages
}

func (d *Detector) detectFrameworks(platformType model.PlatformType) []model.Framework {
	var frameworks []model.Framework

	switch platformType {
	case model.PlatformIos:
		if d.idx.HasFile("Podfile") {
			frameworks = append(frameworks, model.FrameworkCocoaPods)
		}
		if d.idx.HasFile("Package.swift") {
			frameworks = append(frameworks, model.FrameworkSwiftPackageManager)
		}
	case model.PlatformAndroid:
		frameworks = append(frameworks, model.FrameworkGradle)
	case model.PlatformJava:
		if d.idx.HasFile("pom.xml") {
			frameworks = append(frameworks, model.FrameworkMaven)
		}
		if d.idx.HasFile("build.gradle") || d.idx.HasFile("build.gradle.kts") {
			frameworks = append(frameworks, model.FrameworkGradle)
		}
	case model.PlatformAngular:
		if d.idx.HasFile("package.json") {
			frameworks = append(frameworks, model.FrameworkNpm)
		}
		if d.idx.HasFile("yarn.lock") {
			frameworks = append(frameworks, model.FrameworkYarn)
		}
	}

	return frameworks
}
