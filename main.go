package main

import (
	"github.com/migration-toolkit/gradle-offline-deps-cli/cmd"
)

func main() {
	cmd.Execute()
}
