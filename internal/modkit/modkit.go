// Package modkit wires api modules: shared deps, build options and mounting
package modkit

import (
	"layoffs/internal/modkit/module"
	"layoffs/internal/platform/logger"
	phttp "layoffs/internal/platform/net/http"
)

// Module is re-exported so modules only import modkit
type Module = module.Module

// MountAll mounts mods on r in order, logging each at debug
func MountAll(r phttp.Router, log *logger.Logger, mods ...Module) {
	for _, m := range mods {
		m.MountRoutes(r)
		if log != nil {
			log.Debug().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module mounted")
		}
	}
}
