package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OFFIS-RIT/carekg/pkg/graph"
)

// App holds the read-only state shared by all requests.
type App struct {
	Graph       *graph.Graph
	BuildID     string
	BuiltAt     time.Time
	MaxSeeds    int
	DefaultHops int
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
