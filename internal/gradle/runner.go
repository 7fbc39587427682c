package gradle

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"

	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/consts"
)

// Runner invokes the project's Gradle wrapper with an init script and an
// isolated Gradle home. Every invocation is synchronous and runs at most once:
// there are no retries and no timeout, a hung build blocks the run.
type Runner struct {
	logger         log.Logger
	commandFactory command.Factory
	projectDir     string
	platform       gradleconfig.Platform
}

func NewRunner(logger log.Logger, commandFactory command.Factory, projectDir string, platform gradleconfig.Platform) Runner {
	return Runner{
		logger:         logger,
		commandFactory: commandFactory,
		projectDir:     projectDir,
		platform:       platform,
	}
}

// RunTask runs a single init-script-registered task against the START Gradle
// home.
func (r Runner) RunTask(taskName, initScriptPath string) error {
	args := []string{
		taskName,
		"--init-script", initScriptPath,
		"-g", r.platform.StartGradleHome(r.projectDir),
		"-p", r.projectDir,
		"--info",
	}

	return r.run(args)
}

// RunOfflineBuild runs a full build against the FINAL Gradle home with
// --offline, verifying that the populated cache is sufficient.
func (r Runner) RunOfflineBuild(initScriptPath string) error {
	args := []string{
		consts.OfflineBuildTaskName,
		"--init-script", initScriptPath,
		"-g", r.platform.FinalGradleHome(r.projectDir),
		"-p", r.projectDir,
		"--offline",
	}

	return r.run(args)
}

func (r Runner) run(args []string) error {
	cmd := r.commandFactory.Create(WrapperPath(r.projectDir, r.platform), args, nil)
	r.logger.Infof("(i) $ %s", cmd.PrintableCommandArgs())

	output, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if err != nil {
		r.logger.Errorf("Gradle task failed: %s", err)
		r.logger.Errorf("Command: %s", cmd.PrintableCommandArgs())
		r.logger.Errorf("Output:\n%s", output)

		return fmt.Errorf("run gradle wrapper (%s): %w", cmd.PrintableCommandArgs(), err)
	}

	r.logger.Debugf("Gradle output:\n%s", output)

	return nil
}
