// Package handlers wires the crop service HTTP API: inventory CRUD, the
// enriched dashboard view, field area computation, the harvest planner, and
// the weather proxy.
package handlers

import (
	"github.com/farmos/crop-service/internal/inventory"
	"github.com/farmos/crop-service/internal/stage"
	"github.com/farmos/crop-service/internal/weather"
)

var (
	engine     *stage.Engine
	store      *inventory.Store
	weatherSvc *weather.Service
	clock      stage.Clock
)

// Init sets the package-level dependencies. Must be called once before
// routing requests.
func Init(e *stage.Engine, s *inventory.Store, w *weather.Service, c stage.Clock) {
	engine = e
	store = s
	weatherSvc = w
	clock = c
}
