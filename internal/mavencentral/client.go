package mavencentral

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/mavenrepo"
)

// Client downloads artifacts from a Maven repository over HTTP into the
// Maven-layout offline cache.
type Client struct {
	logger     log.Logger
	httpClient *retryablehttp.Client
	baseURL    string
}

func NewClient(logger log.Logger, baseURL string) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.Logger = nil

	return &Client{
		logger:     logger,
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchArtifact downloads the POM and JAR of an artifact into
// <destDir>/<group-as-path>/<name>/<version>/. The POM is required; a missing
// JAR is tolerated since BOMs and parent POMs publish no JAR.
func (c *Client) FetchArtifact(artifact mavenrepo.Artifact, destDir string) error {
	groupPath := strings.ReplaceAll(artifact.Group, ".", "/")
	remoteDir := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, groupPath, artifact.Name, artifact.Version)
	localDir := filepath.Join(destDir, filepath.FromSlash(groupPath), artifact.Name, artifact.Version)

	if err := os.MkdirAll(localDir, 0755); err != nil { //nolint:gomnd,mnd
		return fmt.Errorf("create cache dir %s, error: %w", localDir, err)
	}

	baseName := fmt.Sprintf("%s-%s", artifact.Name, artifact.Version)

	if err := c.download(remoteDir+"/"+baseName+".pom", filepath.Join(localDir, baseName+".pom")); err != nil {
		return fmt.Errorf("fetch POM of %s: %w", artifact.GAV(), err)
	}

	if err := c.download(remoteDir+"/"+baseName+".jar", filepath.Join(localDir, baseName+".jar")); err != nil {
		c.logger.Debugf("no JAR for %s: %s", artifact.GAV(), err)
	}

	return nil
}

func (c *Client) download(url, dest string) error {
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	c.logger.Debugf("downloaded %s", dest)

	return nil
}
