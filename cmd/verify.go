package cmd

import (
	"errors"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/spf13/cobra"

	gradleconfig "github.com/migration-toolkit/gradle-offline-deps-cli/internal/config/gradle"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/consts"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/mavencentral"
	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/mavenrepo"
)

var errCacheIncomplete = errors.New("offline cache incomplete")

type VerifyParams struct {
	MetadataPath string
	FetchMissing bool
	Platform     string
}

//nolint:gochecknoglobals
var verifyParams = VerifyParams{
	Platform: string(gradleconfig.DetectPlatform()),
}

// verifyCmd represents the `verify` command
var verifyCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "verify <project-dir>",
	Short: "Verify the populated offline dependency cache",
	Long: `Verify the populated offline dependency cache.
This command will:

- Scan the generated Maven-layout cache and list the artifacts found, parsing every POM.
- With --metadata-path, cross-check the cache against the components pinned in the project's
  gradle/verification-metadata.xml.
- With --fetch-missing, download missing components (POM and JAR) from Maven Central into
  the cache.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(_ *cobra.Command, args []string) error {
		logger := log.NewLogger()
		logger.EnableDebugLog(isDebugLogMode)
		logger.TInfof("Verify offline dependency cache")

		projectDir, err := pathutil.NewPathModifier().AbsPath(args[0])
		if err != nil {
			return fmt.Errorf("expand project dir path (%s), error: %w", args[0], err)
		}

		platform, err := gradleconfig.ParsePlatform(verifyParams.Platform)
		if err != nil {
			return err
		}

		if err := verifyCmdFn(logger, projectDir, platform, verifyParams, consts.MavenCentralBaseURL); err != nil {
			return fmt.Errorf("verify offline dependency cache: %w", err)
		}

		logger.TInfof("✅ Offline dependency cache verified")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVar(&verifyParams.MetadataPath, "metadata-path", verifyParams.MetadataPath, "Path of the project's gradle/verification-metadata.xml to cross-check the cache against.")
	verifyCmd.Flags().BoolVar(&verifyParams.FetchMissing, "fetch-missing", verifyParams.FetchMissing, "Download components missing from the cache from Maven Central. Needs --metadata-path.")
	verifyCmd.Flags().StringVar(&verifyParams.Platform, "platform", verifyParams.Platform, "Host layout the cache was populated with: unix or windows. Defaults to the current OS.")
}

func verifyCmdFn(logger log.Logger, projectDir string, platform gradleconfig.Platform, params VerifyParams, repositoryBaseURL string) error {
	configurationDir := platform.ConfigurationDir(projectDir)
	logger.Infof("(i) Offline cache: %s", configurationDir)

	artifacts, err := mavenrepo.Scan(logger, configurationDir)
	if err != nil {
		return err
	}

	logger.Infof("(i) %d artifacts in offline cache", len(artifacts))
	for _, artifact := range artifacts {
		logger.Debugf("  %s", artifact.GAV())
	}

	if params.MetadataPath == "" {
		return nil
	}

	metadataPath, err := pathutil.NewPathModifier().AbsPath(params.MetadataPath)
	if err != nil {
		return fmt.Errorf("expand metadata path (%s), error: %w", params.MetadataPath, err)
	}

	wanted, err := mavenrepo.ComponentsFromVerificationMetadata(metadataPath)
	if err != nil {
		return err
	}
	logger.Infof("(i) %d components pinned in %s", len(wanted), metadataPath)

	missing := mavenrepo.Missing(artifacts, wanted)
	if len(missing) == 0 {
		logger.Infof("(i) All pinned components present in the offline cache")

		return nil
	}

	for _, artifact := range missing {
		logger.Warnf("missing from offline cache: %s", artifact.GAV())
	}

	if !params.FetchMissing {
		return fmt.Errorf("%w: %d pinned components missing", errCacheIncomplete, len(missing))
	}

	client := mavencentral.NewClient(logger, repositoryBaseURL)
	failed := 0
	for _, artifact := range missing {
		logger.Infof("(i) Fetching %s", artifact.GAV())
		if err := client.FetchArtifact(artifact, configurationDir); err != nil {
			logger.Errorf("fetch %s: %s", artifact.GAV(), err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: failed to fetch %d components", errCacheIncomplete, failed)
	}

	return nil
}
