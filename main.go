/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"os"

	"github.com/spaghettifunk/mathforgames/engine"
	"github.com/spaghettifunk/mathforgames/engine/core"
	"github.com/spaghettifunk/mathforgames/testbed"
)

func main() {
	configPath := "testbed/app.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	tb, err := testbed.NewTestGame(configPath)
	if err != nil {
		core.LogFatal("loading testbed: %s", err)
	}

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal("creating engine: %s", err)
	}

	if err := e.Initialize(); err != nil {
		_ = e.Shutdown()
		core.LogFatal("initializing engine: %s", err)
	}

	// run engine
	runErr := e.Run()
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("engine stopped: %s", runErr)
	}
}
