package cmd

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/spf13/cobra"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/buildfile"
	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/utils"
)

type PopulateParams struct {
	OfflineBuild bool
	UpdateConfig bool
	Platform     string
}

//nolint:gochecknoglobals
var populateParams = DefaultPopulateParams()

func DefaultPopulateParams() PopulateParams {
	return PopulateParams{
		OfflineBuild: false,
		UpdateConfig: false,
		Platform:     string(gradleconfig.DetectPlatform()),
	}
}

// populateCmd represents the `populate` command
var populateCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "populate <project-dir>",
	Short: "Populate the project's offline Maven-layout dependency cache",
	Long: `Populate the project's offline Maven-layout dependency cache.
This command will:

- Check that the project has a Gradle wrapper and try to make it executable.
- Write the cache population init scripts into the working directory. These files are overwritten.
- Run the project's Gradle wrapper once per init script, against an isolated Gradle home (START).
- Write the use-downloaded-dependencies.gradle init script that points later builds at the cache.

The final offline build is deliberately not run by default, pass --offline-build to run it.
On the windows layout the project's build files are patched afterwards; pass --update-config
to force that on any platform.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		logger := log.NewLogger()
		logger.EnableDebugLog(isDebugLogMode)
		logger.TInfof("Populate offline dependency cache")

		projectDir, err := pathutil.NewPathModifier().AbsPath(args[0])
		if err != nil {
			return fmt.Errorf("expand project dir path (%s), error: %w", args[0], err)
		}

		platform, err := gradleconfig.ParsePlatform(populateParams.Platform)
		if err != nil {
			return err
		}

		commandFactory := command.NewFactory(env.NewRepository())
		if err := populateCmdFn(logger, commandFactory, utils.DefaultOsProxy(), projectDir, platform, populateParams); err != nil {
			return fmt.Errorf("populate offline dependency cache: %w", err)
		}

		logger.TInfof("✅ Offline dependency cache populated")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(populateCmd)
	populateCmd.Flags().BoolVar(&populateParams.OfflineBuild, "offline-build", populateParams.OfflineBuild, "Run a full offline build against the populated cache at the end. Off by default.")
	populateCmd.Flags().BoolVar(&populateParams.UpdateConfig, "update-config", populateParams.UpdateConfig, "Patch the project's build files to add the cache as a maven repository. Always done on the windows layout.")
	populateCmd.Flags().StringVar(&populateParams.Platform, "platform", populateParams.Platform, "Host layout to prepare: unix or windows. Defaults to the current OS.")
}

func populateCmdFn(
	logger log.Logger,
	commandFactory command.Factory,
	osProxy utils.OsProxy,
	projectDir string,
	platform gradleconfig.Platform,
	params PopulateParams,
) error {
	logger.Infof("(i) Project directory: %s", projectDir)
	logger.Infof("(i) Platform layout: %s", platform)
	logger.Infof("(i) Debug mode and verbose logs: %t", isDebugLogMode)

	wrapperPath, err := gradle.LocateWrapper(projectDir, platform)
	if err != nil {
		return err
	}
	logger.Infof("(i) Gradle wrapper found at %s", wrapperPath)

	if err := gradle.EnsureWrapperExecutable(logger, commandFactory, wrapperPath, platform); err != nil {
		logger.Warnf("Error making %s executable, going to continue anyway: %s", wrapperPath, err)
	}

	runner := gradle.NewRunner(logger, commandFactory, projectDir, platform)
	workDir := platform.WorkDir(projectDir)
	inventory := platform.TemplateInventory()
	templateProxy := utils.DefaultTemplateProxy()

	for _, script := range gradleconfig.PipelineScripts(platform) {
		logger.TInfof("Running %s", script.TaskName)

		scriptPath, err := gradleconfig.WriteInitScript(logger, workDir, script, inventory, osProxy, templateProxy)
		if err != nil {
			return err
		}

		if err := runner.RunTask(script.TaskName, scriptPath); err != nil {
			return err
		}
	}

	offlineScriptPath, err := gradleconfig.WriteInitScript(logger, workDir, gradleconfig.OfflineDependenciesScript(), inventory, osProxy, templateProxy)
	if err != nil {
		return err
	}
	logger.Infof("(i) Offline repository init script written to %s", offlineScriptPath)

	if params.OfflineBuild {
		logger.TInfof("Running offline verification build")
		if err := runner.RunOfflineBuild(offlineScriptPath); err != nil {
			return err
		}
	}

	if platform == gradleconfig.PlatformWindows || params.UpdateConfig {
		logger.TInfof("Patching project build files")
		patcher := buildfile.NewPatcher(logger, osProxy)
		if err := patcher.PatchProject(projectDir, platform.ConfigurationDir(projectDir)); err != nil {
			return fmt.Errorf("update project build files: %w", err)
		}
	}

	return nil
}
