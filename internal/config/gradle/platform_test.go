package gradleconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, value := range []string{"unix", "windows"} {
			platform, err := ParsePlatform(value)
			require.NoError(t, err)
			assert.Equal(t, value, string(platform))
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := ParsePlatform("darwin")
		require.Error(t, err)
	})
}

func TestPlatformLayout(t *testing.T) {
	projectDir := filepath.Join("some", "project")

	t.Run("unix keeps everything under qct-gradle", func(t *testing.T) {
		assert.Equal(t, "gradlew", PlatformUnix.WrapperName())
		assert.Equal(t, filepath.Join(projectDir, "qct-gradle"), PlatformUnix.WorkDir(projectDir))
		assert.Equal(t, filepath.Join(projectDir, "qct-gradle", "START"), PlatformUnix.StartGradleHome(projectDir))
		assert.Equal(t, filepath.Join(projectDir, "qct-gradle", "FINAL"), PlatformUnix.FinalGradleHome(projectDir))
		assert.Equal(t, filepath.Join(projectDir, "qct-gradle", "configuration"), PlatformUnix.ConfigurationDir(projectDir))
	})

	t.Run("windows works in the project root", func(t *testing.T) {
		assert.Equal(t, "gradlew.bat", PlatformWindows.WrapperName())
		assert.Equal(t, projectDir, PlatformWindows.WorkDir(projectDir))
		assert.Equal(t, filepath.Join(projectDir, "START"), PlatformWindows.StartGradleHome(projectDir))
		assert.Equal(t, filepath.Join(projectDir, "configuration"), PlatformWindows.ConfigurationDir(projectDir))
	})
}

func TestTemplateInventory(t *testing.T) {
	unix := PlatformUnix.TemplateInventory()
	assert.Equal(t, "qct-gradle/", unix.WorkDirPrefix)
	assert.Equal(t, "gradlew", unix.WrapperName)
	assert.Equal(t, "Sync", unix.CacheTaskType)

	windows := PlatformWindows.TemplateInventory()
	assert.Equal(t, "", windows.WorkDirPrefix)
	assert.Equal(t, "gradlew.bat", windows.WrapperName)
	assert.Equal(t, "Copy", windows.CacheTaskType)
}

func TestPipelineScripts(t *testing.T) {
	t.Run("unix runs cacheToMavenLocal twice", func(t *testing.T) {
		scripts := PipelineScripts(PlatformUnix)
		require.Len(t, scripts, 5)

		var tasks []string
		for _, script := range scripts {
			tasks = append(tasks, script.TaskName)
		}
		assert.Equal(t, []string{
			"copyModules2",
			"cacheToMavenLocal",
			"printResolvedDependenciesAndTransformToM2",
			"cacheToMavenLocal",
			"runAndParseBuildEnvironment",
		}, tasks)
	})

	t.Run("windows runs every task once", func(t *testing.T) {
		scripts := PipelineScripts(PlatformWindows)
		require.Len(t, scripts, 4)

		var tasks []string
		for _, script := range scripts {
			tasks = append(tasks, script.TaskName)
		}
		assert.Equal(t, []string{
			"copyModules2",
			"cacheToMavenLocal",
			"printResolvedDependenciesAndTransformToM2",
			"runAndParseBuildEnvironment",
		}, tasks)
	})
}
