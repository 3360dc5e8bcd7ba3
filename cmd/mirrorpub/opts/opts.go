package opts

import (
	"io"

	"github.com/mirrorpub/mirrorpub/pkg/config"
	"github.com/mirrorpub/mirrorpub/pkg/status"
	"github.com/mirrorpub/mirrorpub/pkg/vcs"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	StatusMgr  *status.Manager
	UserLogger *status.UserLogger
	VCS        vcs.Runner
	Out        io.Writer
}
