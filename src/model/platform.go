package model

// PlatformType identifies the ecosystem a repository targets
type PlatformType string

const (
	PlatformIos     PlatformType = "ios"
	PlatformAndroid PlatformType = "android"
	PlatformAngular PlatformType = "angular"
	PlatformJava    PlatformType = "java"
	PlatformUnknown PlatformType = "unknown"
)

// Emoji returns a display emoji for the platform
func (p PlatformType) Emoji() string {
	switch p {
	case PlatformIos:
		return "📱"
	case PlatformAndroid:
		return "🤖"
	case PlatformAngular:
		return "🌐"
	case PlatformJava:
		return "☕"
	default:
		return "💻"
	}
}

// Language represents a programming language detected in the codebase
type Language string

const (
	LanguageSwift      Language = "swift"
	LanguageObjectiveC Language = "objective-c"
	LanguageKotlin     Language = "kotlin"
	LanguageJava       Language = "java"
	LanguageTypeScript Language = "typescript"
	LanguageJavaScript Language = "javascript"
)

// Framework represents a build tool or package manager
type Framework string

const (
	FrameworkCocoaPods           Framework = "cocoapods"
	FrameworkSwiftPackageManager Framework = "swift-package-manager"
	FrameworkGradle              Framework = "gradle"
	FrameworkMaven               Framework = "maven"
	FrameworkNpm                 Framework = "npm"
	FrameworkYarn                Framework = "yarn"
)

// TestFramework represents a testing framework detected in test sources
type TestFramework string

const (
	TestFrameworkJUnit   TestFramework = "junit"
	TestFrameworkMockito TestFramework = "mockito"
	TestFrameworkMockK   TestFramework = "mockk"
	TestFrameworkXCTest  TestFramework = "xctest"
	TestFrameworkQuick   TestFramework = "quick"
	TestFrameworkJasmine TestFramework = "jasmine"
	TestFrameworkJest    TestFramework = "jest"
)

// PlatformInfo is the result of platform detection.
// Evidence lists the marker files that triggered the classification.
type PlatformInfo struct {
	PlatformType PlatformType `json:"platform_type" yaml:"platform_type"`
	Evidence     []string     `json:"evidence" yaml:"evidence"`
	Languages    []Language   `json:"languages" yaml:"languages"`
	Frameworks   []Framework  `json:"frameworks" yaml:"frameworks"`
}
