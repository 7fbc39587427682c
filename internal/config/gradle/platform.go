package gradleconfig

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/consts"
)

// Platform selects the host-specific layout of the dependency cache run: the
// wrapper executable name and where the working directories live relative to
// the project root. The unix layout keeps everything under
// <project>/qct-gradle, the windows layout writes directly into the project
// root.
type Platform string

//nolint:gochecknoglobals
var (
	PlatformUnix    Platform = "unix"
	PlatformWindows Platform = "windows"
)

func DetectPlatform() Platform {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}

	return PlatformUnix
}

func ParsePlatform(value string) (Platform, error) {
	switch Platform(value) {
	case PlatformUnix, PlatformWindows:
		return Platform(value), nil
	default:
		return "", fmt.Errorf("invalid platform: %q (expected %s or %s)", value, PlatformUnix, PlatformWindows)
	}
}

func (p Platform) WrapperName() string {
	if p == PlatformWindows {
		return "gradlew.bat"
	}

	return "gradlew"
}

// WorkDir is the directory the init scripts are written into.
func (p Platform) WorkDir(projectDir string) string {
	if p == PlatformWindows {
		return projectDir
	}

	return filepath.Join(projectDir, consts.WorkingDirName)
}

// StartGradleHome is the isolated Gradle home the cache population tasks run
// with (-g), holding the raw Gradle module cache.
func (p Platform) StartGradleHome(projectDir string) string {
	return filepath.Join(p.WorkDir(projectDir), consts.StartGradleHomeName)
}

// FinalGradleHome is the Gradle home the optional offline build runs with.
func (p Platform) FinalGradleHome(projectDir string) string {
	return filepath.Join(p.WorkDir(projectDir), consts.FinalGradleHomeName)
}

// ConfigurationDir is the Maven-layout destination cache.
func (p Platform) ConfigurationDir(projectDir string) string {
	return filepath.Join(p.WorkDir(projectDir), consts.ConfigurationDirName)
}

// workDirPrefix is the path fragment the Groovy templates put between
// ${project.projectDir} and the working directory names. Always
// forward-slashed, Gradle handles separators on both hosts.
func (p Platform) workDirPrefix() string {
	if p == PlatformWindows {
		return ""
	}

	return consts.WorkingDirName + "/"
}

func (p Platform) TemplateInventory() TemplateInventory {
	// The windows layout uses a plain Copy for the cache reshaping task, the
	// unix layout a Sync.
	cacheTaskType := "Sync"
	if p == PlatformWindows {
		cacheTaskType = "Copy"
	}

	return TemplateInventory{
		WorkDirPrefix: p.workDirPrefix(),
		WrapperName:   p.WrapperName(),
		CacheTaskType: cacheTaskType,
	}
}
