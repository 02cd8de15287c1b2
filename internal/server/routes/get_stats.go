package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/OFFIS-RIT/carekg/internal/server/middleware"
)

// GetStatsHandler reports node and edge counts of the loaded graph.
func GetStatsHandler(c echo.Context) error {
	type statsResponse struct {
		BuildID      string         `json:"build_id"`
		BuiltAt      time.Time      `json:"built_at"`
		Nodes        int            `json:"nodes"`
		Edges        int            `json:"edges"`
		Placeholders int            `json:"placeholders"`
		NodesByType  map[string]int `json:"nodes_by_type"`
		EdgesByType  map[string]int `json:"edges_by_type"`
	}

	app := c.(*middleware.AppContext).App
	resp := statsResponse{
		BuildID:     app.BuildID,
		BuiltAt:     app.BuiltAt,
		NodesByType: make(map[string]int),
		EdgesByType: make(map[string]int),
	}

	for _, n := range app.Graph.Nodes() {
		resp.Nodes++
		if n.Placeholder() {
			resp.Placeholders++
			continue
		}
		resp.NodesByType[string(n.Type)]++
	}
	for _, e := range app.Graph.Edges() {
		resp.Edges++
		resp.EdgesByType[string(e.Relation)]++
	}

	return c.JSON(http.StatusOK, resp)
}
