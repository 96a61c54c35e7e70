package installer

import "github.com/sandevgo/roster/internal/config"

type InstallState struct {
	// Config starts as the effective configuration and is edited by the steps.
	Config config.AppConfig

	// Dir is the runtime directory the .env file is written to.
	Dir       string
	Overwrite bool

	EnvPath string
	Err     error
}

func NewInstallState(cfg config.AppConfig, dir string, overwrite bool) *InstallState {
	return &InstallState{
		Config:    cfg,
		Dir:       dir,
		Overwrite: overwrite,
	}
}
