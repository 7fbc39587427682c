package gradle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"

	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
)

var ErrWrapperNotFound = errors.New("gradle wrapper not found")

func WrapperPath(projectDir string, platform gradleconfig.Platform) string {
	return filepath.Join(projectDir, platform.WrapperName())
}

// LocateWrapper checks that the project has a checked-in Gradle wrapper.
// A missing wrapper fails the whole run: nothing is written before this check.
func LocateWrapper(projectDir string, platform gradleconfig.Platform) (string, error) {
	wrapperPath := WrapperPath(projectDir, platform)

	exists, err := pathutil.NewPathChecker().IsPathExists(wrapperPath)
	if err != nil {
		return "", fmt.Errorf("check if wrapper exists at %s, error: %w", wrapperPath, err)
	}
	if !exists {
		return "", fmt.Errorf("%w at %s. Please ensure you have a Gradle wrapper at the root of your project. Run 'gradle wrapper' to generate one", ErrWrapperNotFound, wrapperPath)
	}

	return wrapperPath, nil
}

// EnsureWrapperExecutable tries to make the wrapper runnable: chmod +x on the
// unix layout, attrib -r on windows. Callers treat a failure here as
// non-fatal, the wrapper may already be executable.
func EnsureWrapperExecutable(logger log.Logger, commandFactory command.Factory, wrapperPath string, platform gradleconfig.Platform) error {
	if platform == gradleconfig.PlatformWindows {
		cmd := commandFactory.Create("attrib", []string{"-r", wrapperPath}, nil)

		output, err := cmd.RunAndReturnTrimmedCombinedOutput()
		if err != nil {
			return fmt.Errorf("attrib -r %s: %s: %w", wrapperPath, output, err)
		}

		logger.Debugf("made %s executable", wrapperPath)

		return nil
	}

	if err := os.Chmod(wrapperPath, os.FileMode(0755)); err != nil { //nolint:gomnd,mnd
		return fmt.Errorf("chmod +x %s: %w", wrapperPath, err)
	}

	logger.Debugf("made %s executable", wrapperPath)

	return nil
}
