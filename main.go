/*
Shader editor sandbox: a small scene drawn with hot-reloadable shaders and
an in-engine editor on top.
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima-editor/engine"
	"github.com/spaghettifunk/anima-editor/engine/config"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/testbed"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the application config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, core.ErrFileNotFound) {
		core.LogWarn("%s not found, using defaults", *configPath)
		cfg = config.Default()
	} else if err != nil {
		core.LogFatal(err.Error())
	}

	tb := testbed.NewTestGame(cfg)

	engine, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := engine.Initialize(); err != nil {
		_ = engine.Shutdown()
		core.LogFatal(err.Error())
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		engine.Quit()
	}()

	// run engine
	if err := engine.Run(); err != nil {
		core.LogError(err.Error())
	}
	if err := engine.Shutdown(); err != nil {
		core.LogFatal(err.Error())
	}
}
