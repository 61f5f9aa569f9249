package configs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/peopl/cmds"
	"github.com/reusee/peopl/logs"
)

//go:embed schema.cue
var Schema string

type Module struct {
	dscope.Module
	Logs logs.Module
}

var extraFiles = cmds.Collect[string]("-config")

var fileNames = []string{
	"peopl.cue",
	".peopl.cue",
}

// Loader reads files given by -config first, then discovers config files in
// the working directory, the user config directory and /etc.
func (Module) Loader(
	logger logs.Logger,
) Loader {
	var dirs []string
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	paths := slices.Clone(*extraFiles)
	for _, dir := range dirs {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	if len(paths) > 0 {
		logger.Info("config file", "paths", paths)
	}

	return NewLoader(paths, Schema)
}
