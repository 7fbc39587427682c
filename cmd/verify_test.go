package cmd

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
)

const examplePom = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <groupId>com.example</groupId>
  <artifactId>lib</artifactId>
  <version>1.0</version>
</project>
`

func prepCache(t *testing.T) (projectDir string, configDir string) {
	t.Helper()
	projectDir = t.TempDir()
	configDir = gradleconfig.PlatformUnix.ConfigurationDir(projectDir)

	pomPath := filepath.Join(configDir, "com", "example", "lib", "1.0", "lib-1.0.pom")
	require.NoError(t, os.MkdirAll(filepath.Dir(pomPath), 0755))
	require.NoError(t, os.WriteFile(pomPath, []byte(examplePom), 0644))

	return projectDir, configDir
}

func writeVerificationMetadata(t *testing.T, components string) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "verification-metadata.xml")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<verification-metadata xmlns="https://schema.gradle.org/dependency-verification">
   <components>
` + components + `   </components>
</verification-metadata>
`
	require.NoError(t, os.WriteFile(pth, []byte(content), 0644))

	return pth
}

func Test_verifyCmdFn(t *testing.T) {
	logger := log.NewLogger()

	t.Run("a cache covering every pinned component passes", func(t *testing.T) {
		projectDir, _ := prepCache(t)
		params := VerifyParams{
			MetadataPath: writeVerificationMetadata(t, `      <component group="com.example" name="lib" version="1.0"/>
`),
		}

		err := verifyCmdFn(logger, projectDir, gradleconfig.PlatformUnix, params, "https://repo1.maven.org/maven2")

		require.NoError(t, err)
	})

	t.Run("no metadata path means scan only", func(t *testing.T) {
		projectDir, _ := prepCache(t)

		err := verifyCmdFn(logger, projectDir, gradleconfig.PlatformUnix, VerifyParams{}, "https://repo1.maven.org/maven2")

		require.NoError(t, err)
	})

	t.Run("a missing pinned component fails the verification", func(t *testing.T) {
		projectDir, _ := prepCache(t)
		params := VerifyParams{
			MetadataPath: writeVerificationMetadata(t, `      <component group="com.example" name="lib" version="1.0"/>
      <component group="org.sample" name="tool" version="2.1"/>
`),
		}

		err := verifyCmdFn(logger, projectDir, gradleconfig.PlatformUnix, params, "https://repo1.maven.org/maven2")

		require.ErrorIs(t, err, errCacheIncomplete)
	})

	t.Run("fetch-missing downloads the gap into the cache", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/org/sample/tool/2.1/tool-2.1.pom", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<project/>"))
		})
		mux.HandleFunc("/org/sample/tool/2.1/tool-2.1.jar", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("jar-bytes"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		projectDir, configDir := prepCache(t)
		params := VerifyParams{
			MetadataPath: writeVerificationMetadata(t, `      <component group="com.example" name="lib" version="1.0"/>
      <component group="org.sample" name="tool" version="2.1"/>
`),
			FetchMissing: true,
		}

		err := verifyCmdFn(logger, projectDir, gradleconfig.PlatformUnix, params, server.URL)

		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(configDir, "org", "sample", "tool", "2.1", "tool-2.1.pom"))
		assert.FileExists(t, filepath.Join(configDir, "org", "sample", "tool", "2.1", "tool-2.1.jar"))
	})

	t.Run("fetch-missing still fails when the repository has no such component", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		projectDir, _ := prepCache(t)
		params := VerifyParams{
			MetadataPath: writeVerificationMetadata(t, `      <component group="org.sample" name="tool" version="2.1"/>
`),
			FetchMissing: true,
		}

		err := verifyCmdFn(logger, projectDir, gradleconfig.PlatformUnix, params, server.URL)

		require.ErrorIs(t, err, errCacheIncomplete)
	})
}
