package buildfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bmatcuk/doublestar/v4"

	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/consts"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/utils"
)

// Patching is purely textual and best-effort: unusually formatted Gradle files
// may receive an oddly placed insertion, the result is not syntax checked.
// Every patch is idempotent, the inserted repository URI doubles as the
// presence marker.

var (
	pluginManagementPattern = regexp.MustCompile(`pluginManagement\s*\{[^}]*\}`)
	repositoriesPattern     = regexp.MustCompile(`repositories\s*\{[^}]*\}`)
)

type Patcher struct {
	logger  log.Logger
	osProxy utils.OsProxy
}

func NewPatcher(logger log.Logger, osProxy utils.OsProxy) Patcher {
	return Patcher{
		logger:  logger,
		osProxy: osProxy,
	}
}

// PatchProject walks the project tree and adds the generated Maven-layout
// cache as a repository to every build.gradle, build.gradle.kts and
// settings.gradle found. A missing root settings.gradle is created.
func (p Patcher) PatchProject(projectDir, configurationDir string) error {
	skipDirs := map[string]bool{
		consts.WorkingDirName:       true,
		consts.StartGradleHomeName:  true,
		consts.FinalGradleHomeName:  true,
		consts.ConfigurationDirName: true,
		".git":                      true,
		".gradle":                   true,
	}

	err := filepath.WalkDir(projectDir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if pth != projectDir && skipDirs[entry.Name()] {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(projectDir, pth)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case matchesPattern("**/build.gradle", rel):
			return p.patchFile(pth, configurationDir, patchGroovy)
		case matchesPattern("**/build.gradle.kts", rel):
			return p.patchFile(pth, configurationDir, patchKotlin)
		case matchesPattern("**/settings.gradle", rel):
			return p.patchFile(pth, configurationDir, patchSettings)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("walk project tree at %s, error: %w", projectDir, err)
	}

	return p.ensureRootSettings(projectDir, configurationDir)
}

func matchesPattern(pattern, relPath string) bool {
	matched, err := doublestar.Match(pattern, relPath)

	return err == nil && matched
}

func (p Patcher) patchFile(pth, configurationDir string, patch func(content, configurationDir string) (string, bool)) error {
	content, exists, err := p.osProxy.ReadFileIfExists(pth)
	if err != nil {
		return fmt.Errorf("read %s, error: %w", pth, err)
	}
	if !exists {
		return nil
	}

	updated, changed := patch(content, configurationDir)
	if !changed {
		p.logger.Debugf("%s already contains the repository URL", pth)

		return nil
	}

	if err := p.osProxy.WriteFile(pth, []byte(updated), os.FileMode(0644)); err != nil { //nolint:gomnd,mnd
		return fmt.Errorf("write %s, error: %w", pth, err)
	}

	p.logger.Infof("(i) Updated %s", pth)

	return nil
}

func (p Patcher) ensureRootSettings(projectDir, configurationDir string) error {
	settingsPath := filepath.Join(projectDir, "settings.gradle")

	_, exists, err := p.osProxy.ReadFileIfExists(settingsPath)
	if err != nil {
		return fmt.Errorf("read %s, error: %w", settingsPath, err)
	}
	if exists {
		// Already patched by the walk.
		return nil
	}

	block := gradleconfig.PluginManagementBlock(configurationDir)
	if err := p.osProxy.WriteFile(settingsPath, []byte(block), os.FileMode(0644)); err != nil { //nolint:gomnd,mnd
		return fmt.Errorf("write %s, error: %w", settingsPath, err)
	}

	p.logger.Infof("(i) Created %s", settingsPath)

	return nil
}

func patchGroovy(content, configurationDir string) (string, bool) {
	if strings.Contains(content, gradleconfig.RepositoryMarkerGroovy(configurationDir)) {
		return content, false
	}

	snippet := gradleconfig.RepositorySnippetGroovy(configurationDir)
	if strings.Contains(content, "repositories {") {
		return strings.Replace(content, "repositories {", "repositories {\n    "+snippet, 1), true
	}

	return content + "\n\nrepositories {\n    " + snippet + "\n}\n", true
}

func patchKotlin(content, configurationDir string) (string, bool) {
	if strings.Contains(content, gradleconfig.RepositoryMarkerKotlin(configurationDir)) {
		return content, false
	}

	snippet := gradleconfig.RepositorySnippetKotlin(configurationDir)
	if strings.Contains(content, "repositories {") {
		return strings.Replace(content, "repositories {", "repositories {\n    "+snippet, 1), true
	}

	return content + "\n\nrepositories {\n    " + snippet + "\n}\n", true
}

func patchSettings(content, configurationDir string) (string, bool) {
	if strings.Contains(content, gradleconfig.RepositoryMarkerGroovy(configurationDir)) {
		return content, false
	}

	if !strings.Contains(content, "pluginManagement") {
		return gradleconfig.PluginManagementBlock(configurationDir) + "\n" + content, true
	}

	block := pluginManagementPattern.FindString(content)
	if block == "" {
		return content, false
	}

	snippet := gradleconfig.RepositorySnippetGroovy(configurationDir)

	if !strings.Contains(block, "repositories") {
		updated := strings.TrimSuffix(block, "}") + "    repositories {\n        " + snippet + "\n    }\n}"

		return strings.Replace(content, block, updated, 1), true
	}

	repoBlock := repositoriesPattern.FindString(block)
	if repoBlock == "" {
		return content, false
	}

	updatedRepo := strings.TrimSuffix(repoBlock, "}") + "    " + snippet + "\n    }"

	return strings.Replace(content, repoBlock, updatedRepo, 1), true
}
