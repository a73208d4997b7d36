package app

import "go.trai.ch/typecache/internal/logging"

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger *logging.Logger
}
