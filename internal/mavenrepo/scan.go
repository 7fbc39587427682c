package mavenrepo

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/vifraa/gopom"
)

// Artifact is one group:artifact:version entry of the Maven-layout cache.
type Artifact struct {
	Group   string
	Name    string
	Version string
}

func (a Artifact) GAV() string {
	return fmt.Sprintf("%s:%s:%s", a.Group, a.Name, a.Version)
}

// Scan walks a Maven-layout directory (<group-as-path>/<artifact>/<version>/<file>)
// and returns the distinct artifacts found, sorted by GAV. POM files are
// parsed to surface broken metadata early; a malformed POM is only a warning,
// the artifact still counts.
func Scan(logger log.Logger, configurationDir string) ([]Artifact, error) {
	seen := map[Artifact]bool{}

	err := filepath.WalkDir(configurationDir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(configurationDir, pth)
		if err != nil {
			return err
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 4 { //nolint:gomnd,mnd
			// Artifacts copied without a version directory (for example
			// plugin markers) cannot be mapped back to a GAV.
			logger.Debugf("skipping non-GAV cache entry: %s", rel)

			return nil
		}

		artifact := Artifact{
			Group:   strings.Join(parts[:len(parts)-3], "."),
			Name:    parts[len(parts)-3],
			Version: parts[len(parts)-2],
		}
		seen[artifact] = true

		if strings.HasSuffix(pth, ".pom") {
			if _, err := gopom.Parse(pth); err != nil {
				logger.Warnf("malformed POM %s: %s", rel, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan offline cache at %s, error: %w", configurationDir, err)
	}

	artifacts := make([]Artifact, 0, len(seen))
	for artifact := range seen {
		artifacts = append(artifacts, artifact)
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].GAV() < artifacts[j].GAV()
	})

	return artifacts, nil
}

// Missing returns the wanted artifacts not present in the cache.
func Missing(cached, wanted []Artifact) []Artifact {
	present := map[Artifact]bool{}
	for _, artifact := range cached {
		present[artifact] = true
	}

	var missing []Artifact
	for _, artifact := range wanted {
		if !present[artifact] {
			missing = append(missing, artifact)
		}
	}

	return missing
}
