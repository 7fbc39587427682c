package utils

import (
	"fmt"
	"os"

	"github.com/bitrise-io/go-utils/v2/pathutil"
)

// OsProxy wraps the filesystem operations used by the CLI so tests can inject
// failures for any of them.
type OsProxy struct {
	ReadFileIfExists func(pth string) (string, bool, error)
	MkdirAll         func(string, os.FileMode) error
	WriteFile        func(string, []byte, os.FileMode) error
}

func DefaultOsProxy() OsProxy {
	return OsProxy{
		ReadFileIfExists: ReadFileIfExists,
		MkdirAll:         os.MkdirAll,
		WriteFile:        os.WriteFile,
	}
}

func ReadFileIfExists(pth string) (string, bool, error) {
	isFileExist, err := pathutil.NewPathChecker().IsPathExists(pth)
	if err != nil {
		return "", false, fmt.Errorf("check if file exists at %s, error: %w", pth, err)
	}

	if !isFileExist {
		return "", false, nil
	}

	fContent, err := os.ReadFile(pth)
	if err != nil {
		return "", true, fmt.Errorf("read file at %s, error: %w", pth, err)
	}

	return string(fContent), true, nil
}
