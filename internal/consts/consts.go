package consts

const (
	// Working directory names. On the unix layout everything lives under
	// <project>/qct-gradle, on the windows layout directly under <project>.
	WorkingDirName       = "qct-gradle"
	StartGradleHomeName  = "START"
	FinalGradleHomeName  = "FINAL"
	ConfigurationDirName = "configuration"

	// Init script file names, as written into the working directory.
	CopyModulesScriptFileName       = "copyModules-init.gradle"
	CacheToMavenLocalScriptFileName = "custom-init.gradle"
	ResolvedDepsScriptFileName      = "resolved-paths-init.gradle"
	BuildEnvScriptFileName          = "buildEnv-copy-init.gradle"
	OfflineDepsScriptFileName       = "use-downloaded-dependencies.gradle"

	// Gradle task names registered by the init scripts.
	CopyModulesTaskName       = "copyModules2"
	CacheToMavenLocalTaskName = "cacheToMavenLocal"
	ResolvedDepsTaskName      = "printResolvedDependenciesAndTransformToM2"
	BuildEnvTaskName          = "runAndParseBuildEnvironment"
	OfflineBuildTaskName      = "build"

	MavenCentralBaseURL = "https://repo1.maven.org/maven2"
)
