package gradleconfig

import "fmt"

// Snippets inserted into the project's build and settings files by the
// build-file patcher. All of them point at the generated Maven-layout cache
// via its absolute path, so the same snippet works in every subproject.
//
// The marker returned next to each snippet is the substring checked before
// insertion, which makes patching idempotent: the marker is part of the
// snippet itself, so a patched file is never patched twice.

func RepositoryMarkerGroovy(configurationDir string) string {
	return fmt.Sprintf("url uri('%s')", configurationDir)
}

func RepositorySnippetGroovy(configurationDir string) string {
	return fmt.Sprintf(`maven {
        %s
        metadataSources {
            mavenPom()
            artifact()
        }
    }`, RepositoryMarkerGroovy(configurationDir))
}

func RepositoryMarkerKotlin(configurationDir string) string {
	return fmt.Sprintf(`url = uri("%s")`, configurationDir)
}

func RepositorySnippetKotlin(configurationDir string) string {
	return fmt.Sprintf(`maven {
        %s
        metadataSources {
            mavenPom()
            artifact()
        }
    }`, RepositoryMarkerKotlin(configurationDir))
}

// PluginManagementBlock is the full block written into a settings.gradle that
// has no pluginManagement yet.
func PluginManagementBlock(configurationDir string) string {
	return fmt.Sprintf(`pluginManagement {
    repositories {
        %s
    }
}
`, RepositorySnippetGroovy(configurationDir))
}
