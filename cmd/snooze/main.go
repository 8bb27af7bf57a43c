// snooze - Delay Notification Timer
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/snooze

package main

import (
	"os"

	"github.com/ariel-frischer/snooze/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
