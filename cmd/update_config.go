package cmd

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/spf13/cobra"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/buildfile"
	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/utils"
)

//nolint:gochecknoglobals
var updateConfigPlatform = string(gradleconfig.DetectPlatform())

// updateConfigCmd represents the `update-config` command
var updateConfigCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "update-config <project-dir>",
	Short: "Patch the project's build files to use the offline dependency cache",
	Long: `Patch the project's build files to use the offline dependency cache.
This command will:

- Walk the project tree and add a maven repository block pointing at the generated cache to
  every build.gradle and build.gradle.kts found.
- Add the same repository to the pluginManagement block of every settings.gradle, creating
  the block (or the file, at the project root) when missing.

Patching is idempotent: a file already pointing at the cache is left unchanged.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		logger := log.NewLogger()
		logger.EnableDebugLog(isDebugLogMode)
		logger.TInfof("Update project config to use the offline dependency cache")

		projectDir, err := pathutil.NewPathModifier().AbsPath(args[0])
		if err != nil {
			return fmt.Errorf("expand project dir path (%s), error: %w", args[0], err)
		}

		platform, err := gradleconfig.ParsePlatform(updateConfigPlatform)
		if err != nil {
			return err
		}

		if err := updateConfigCmdFn(logger, utils.DefaultOsProxy(), projectDir, platform); err != nil {
			return fmt.Errorf("update project config: %w", err)
		}

		logger.TInfof("✅ Project config updated")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateConfigCmd)
	updateConfigCmd.Flags().StringVar(&updateConfigPlatform, "platform", updateConfigPlatform, "Host layout the cache was populated with: unix or windows. Defaults to the current OS.")
}

func updateConfigCmdFn(logger log.Logger, osProxy utils.OsProxy, projectDir string, platform gradleconfig.Platform) error {
	logger.Infof("(i) Project directory: %s", projectDir)

	patcher := buildfile.NewPatcher(logger, osProxy)

	return patcher.PatchProject(projectDir, platform.ConfigurationDir(projectDir))
}
