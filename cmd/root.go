package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var isDebugLogMode bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "gradle-offline-deps",
	Short: "Pre-populate a local Maven-layout dependency cache for a Gradle project, so a later build can run fully offline.",
	Long: `Pre-populate a local Maven-layout dependency cache for a Gradle project, so a later build can run fully offline.

What does the CLI do on a high level?

It writes a set of Gradle init scripts into the project's working directory and runs the
project's own Gradle wrapper once per script with an isolated Gradle home. The init scripts
do the heavy lifting inside Gradle: build into the isolated cache, reshape the Gradle module
cache into Maven repository layout under the configuration directory, and sweep resolvable
configurations, plugin markers and the buildEnvironment output for artifacts to copy.

The project's build.gradle/build.gradle.kts/settings.gradle files can then be patched to add
the generated directory as a maven repository (update-config), and the result can be
cross-checked against the project's dependency verification metadata (verify).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&isDebugLogMode, "debug", "d", false, "Enable debug logging mode")
}
