package gradleconfig

import (
	_ "embed"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/consts"
)

//go:embed asset/copy-modules.gradle.gotemplate
var copyModulesTemplateText string

//go:embed asset/cache-to-maven-local.gradle.gotemplate
var cacheToMavenLocalTemplateText string

//go:embed asset/resolved-dependencies.gradle.gotemplate
var resolvedDependenciesTemplateText string

//go:embed asset/build-env-copy.gradle.gotemplate
var buildEnvCopyTemplateText string

//go:embed asset/use-downloaded-dependencies.gradle.gotemplate
var useDownloadedDependenciesTemplateText string

// TemplateInventory holds the platform-specific values substituted into the
// Groovy init script templates.
type TemplateInventory struct {
	// WorkDirPrefix is "qct-gradle/" on the unix layout, "" on windows.
	WorkDirPrefix string
	// WrapperName is gradlew or gradlew.bat.
	WrapperName string
	// CacheTaskType is the Gradle task type of cacheToMavenLocal (Sync or Copy).
	CacheTaskType string
}

// InitScript describes one Gradle init script: its file name in the working
// directory, the task it registers (empty for scripts that are only written,
// never run by this CLI) and its template.
type InitScript struct {
	FileName     string
	TaskName     string
	templateText string
}

func CopyModulesScript() InitScript {
	return InitScript{
		FileName:     consts.CopyModulesScriptFileName,
		TaskName:     consts.CopyModulesTaskName,
		templateText: copyModulesTemplateText,
	}
}

func CacheToMavenLocalScript() InitScript {
	return InitScript{
		FileName:     consts.CacheToMavenLocalScriptFileName,
		TaskName:     consts.CacheToMavenLocalTaskName,
		templateText: cacheToMavenLocalTemplateText,
	}
}

func ResolvedDependenciesScript() InitScript {
	return InitScript{
		FileName:     consts.ResolvedDepsScriptFileName,
		TaskName:     consts.ResolvedDepsTaskName,
		templateText: resolvedDependenciesTemplateText,
	}
}

func BuildEnvironmentScript() InitScript {
	return InitScript{
		FileName:     consts.BuildEnvScriptFileName,
		TaskName:     consts.BuildEnvTaskName,
		templateText: buildEnvCopyTemplateText,
	}
}

// OfflineDependenciesScript registers the generated Maven-layout cache as a
// repository for all projects and for plugin/buildscript resolution. It is
// written at the end of the pipeline and only executed when the optional
// offline build is requested.
func OfflineDependenciesScript() InitScript {
	return InitScript{
		FileName:     consts.OfflineDepsScriptFileName,
		TaskName:     "",
		templateText: useDownloadedDependenciesTemplateText,
	}
}

// PipelineScripts is the ordered cache population sequence. The unix layout
// runs cacheToMavenLocal a second time after the resolved-dependencies pass,
// so artifacts materialized by that pass get reshaped too.
func PipelineScripts(platform Platform) []InitScript {
	if platform == PlatformWindows {
		return []InitScript{
			CopyModulesScript(),
			CacheToMavenLocalScript(),
			ResolvedDependenciesScript(),
			BuildEnvironmentScript(),
		}
	}

	return []InitScript{
		CopyModulesScript(),
		CacheToMavenLocalScript(),
		ResolvedDependenciesScript(),
		CacheToMavenLocalScript(),
		BuildEnvironmentScript(),
	}
}
