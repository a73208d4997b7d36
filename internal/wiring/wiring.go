// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/typecache/internal/logging"
	// Register app nodes.
	_ "go.trai.ch/typecache/internal/app"
)
