package structure

import "repo-analyzer/src/model"

// patternGroup names the ArchitecturePatterns bucket a content rule feeds
type patternGroup int

const (
	groupDependencyInjection patternGroup = iota
	groupReactive
	groupUIFramework
)

// contentPattern maps source-content needles to a named pattern.
// A nil platforms list applies the rule on every platform.
type contentPattern struct {
	group     patternGroup
	name      string
	needles   []string
	platforms []model.PlatformType
}

// contentPatterns is the pattern catalog scanned against sampled source
// files. Extending detection is a new table row, not new traversal logic.
var contentPatterns = []contentPattern{
	{groupDependencyInjection, "koin", []string{"import Koin", "org.koin"}, nil},
	{groupDependencyInjection, "hilt", []string{"import Hilt", "dagger.hilt"}, nil},
	{groupDependencyInjection, "dagger", []string{"import Dagger", "dagger."}, nil},
	{groupDependencyInjection, "spring", []string{"@Inject", "@Autowired"}, nil},

	{groupReactive, "rxswift", []string{"import RxSwift", "import RxCocoa"}, nil},
	{groupReactive, "rxjava", []string{"import RxJava", "io.reactivex"}, nil},
	{groupReactive, "combine", []string{"import Combine"}, nil},
	{groupReactive, "coroutines", []string{"kotlinx.coroutines"}, nil},
	{groupReactive, "rxjs", []string{"import { Observable }", "rxjs"}, nil},

	{groupUIFramework, "swiftui", []string{"import SwiftUI"}, nil},
	{groupUIFramework, "uikit", []string{"import UIKit"}, nil},
	{groupUIFramework, "jetpack-compose", []string{"androidx.compose"}, nil},
	{groupUIFramework, "angular", []string{"@Component"}, []model.PlatformType{model.PlatformAngular}},
}

// sourceExtensions lists the source file extensions sampled per platform
var sourceExtensions = map[model.PlatformType][]string{
	model.PlatformJava:    {"java", "kt"},
	model.PlatformAndroid: {"java", "kt"},
	model.PlatformIos:     {"swift", "m", "h"},
	model.PlatformAngular: {"ts", "js"},
}

// testFilePatterns lists path substrings identifying test files per platform
var testFilePatterns = map[model.PlatformType][]string{
	model.PlatformJava:    {"Test.java", "Test.kt", "Tests.java", "Tests.kt"},
	model.PlatformAndroid: {"Test.java", "Test.kt", "Tests.java", "Tests.kt"},
	model.PlatformIos:     {"Test.swift", "Tests.swift", "Spec.swift"},
	model.PlatformAngular: {".spec.ts", ".spec.js", "test.ts"},
}

// testFrameworkNeedle maps test-file content to a TestFramework variant
type testFrameworkNeedle struct {
	framework model.TestFramework
	needles   []string
}

var testFrameworkNeedles = map[model.PlatformType][]testFrameworkNeedle{
	model.PlatformJava: {
		{model.TestFrameworkJUnit, []string{"import org.junit"}},
		{model.TestFrameworkMockito, []string{"import org.mockito"}},
		{model.TestFrameworkMockK, []string{"import io.mockk"}},
	},
	model.PlatformAndroid: {
		{model.TestFrameworkJUnit, []string{"import org.junit"}},
		{model.TestFrameworkMockito, []string{"import org.mockito"}},
		{model.TestFrameworkMockK, []string{"import io.mockk"}},
	},
	model.PlatformIos: {
		{model.TestFrameworkXCTest, []string{"import XCTest"}},
		{model.TestFrameworkQuick, []string{"import Quick"}},
	},
	model.PlatformAngular: {
		{model.TestFrameworkJasmine, []string{"jasmine", "describe("}},
		{model.TestFrameworkJest, []string{"jest"}},
	},
}

// testDirNames are directory names treated as test roots
var testDirNames = []string{"test", "tests", "Test", "Tests", "androidTest", "unitTest"}

// sourceDirPatterns lists path substrings identifying source roots per platform
var sourceDirPatterns = map[model.PlatformType][]string{
	model.PlatformJava:    {"src/main/java", "src/main/kotlin", "src"},
	model.PlatformAndroid: {"src/main/java", "src/main/kotlin", "src"},
	model.PlatformIos:     {"Sources", "src"},
	model.PlatformAngular: {"src/app", "src"},
}

// resourceDirPatterns lists path substrings identifying resource roots
var resourceDirPatterns = map[model.PlatformType][]string{
	model.PlatformJava:    {"src/main/resources", "res"},
	model.PlatformAndroid: {"src/main/resources", "res"},
	model.PlatformIos:     {"Resources", "Assets.xcassets"},
	model.PlatformAngular: {"src/assets"},
}

// configFileNames lists the build/config manifests reported per platform
var configFileNames = map[model.PlatformType][]string{
	model.PlatformJava:    {"build.gradle", "pom.xml", "settings.gradle"},
	model.PlatformAndroid: {"build.gradle", "pom.xml", "settings.gradle"},
	model.PlatformIos:     {"Package.swift", "Podfile", "project.pbxproj"},
	model.PlatformAngular: {"angular.json", "package.json", "tsconfig.json"},
}

// buildCommandTemplates holds the fixed command templates per platform.
// Java is resolved at lookup time between the maven and gradle variants.
var buildCommandTemplates = map[model.PlatformType]model.BuildCommands{
	model.PlatformAndroid: {
		MainBuild:   "./gradlew assembleDebug",
		TestCompile: "./gradlew compileDebugUnitTestKotlin",
		TestRun:     "./gradlew testDebugUnitTest",
	},
	model.PlatformIos: {
		MainBuild:   "xcodebuild -scheme <scheme> build",
		TestCompile: "xcodebuild -scheme <scheme> build-for-testing",
		TestRun:     "xcodebuild test -scheme <scheme>",
	},
	model.PlatformAngular: {
		MainBuild: "npm run build",
		TestRun:   "npm test",
	},
	model.PlatformUnknown: {
		MainBuild: "make",
		TestRun:   "make test",
	},
}

var javaMavenCommands = model.BuildCommands{
	MainBuild:   "mvn compile",
	TestCompile: "mvn test-compile",
	TestRun:     "mvn test",
}

var javaGradleCommands = model.BuildCommands{
	MainBuild:   "./gradlew build",
	TestCompile: "./gradlew testClasses",
	TestRun:     "./gradlew test",
}
