package gradleconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitrise-io/go-utils/v2/log"

	"github.com/migration-toolkit/gradle-offline-deps-cli/internal/utils"
)

// WriteInitScript renders the script's template with the given inventory and
// writes it into workDir, overwriting any previous version. Returns the
// written path.
func WriteInitScript(
	logger log.Logger,
	workDir string,
	script InitScript,
	inventory TemplateInventory,
	osProxy utils.OsProxy,
	templateProxy utils.TemplateProxy,
) (string, error) {
	if err := osProxy.MkdirAll(workDir, 0755); err != nil { //nolint:gomnd,mnd
		return "", fmt.Errorf("ensure init script dir exists (%s), error: %w", workDir, err)
	}

	tmpl, err := templateProxy.Parse(script.FileName, script.templateText)
	if err != nil {
		return "", fmt.Errorf("parse init script template %s, error: %w", script.FileName, err)
	}

	resultBuffer := bytes.Buffer{}
	if err := templateProxy.Execute(tmpl, &resultBuffer, inventory); err != nil {
		return "", fmt.Errorf("render init script %s, error: %w", script.FileName, err)
	}

	initScriptPath := filepath.Join(workDir, script.FileName)
	if err := osProxy.WriteFile(initScriptPath, resultBuffer.Bytes(), os.FileMode(0644)); err != nil { //nolint:gomnd,mnd
		return "", fmt.Errorf("write init script to %s, error: %w", initScriptPath, err)
	}

	logger.Debugf("Init script written to %s", initScriptPath)

	return initScriptPath, nil
}
