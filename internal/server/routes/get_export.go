package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OFFIS-RIT/carekg/internal/server/middleware"
	"github.com/OFFIS-RIT/carekg/pkg/export"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
)

// GetCypherExportHandler streams the loaded graph as Cypher statements.
func GetCypherExportHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="graph.cypher"`)
	res.WriteHeader(http.StatusOK)

	if err := export.WriteCypher(res, app.Graph.Snapshot()); err != nil {
		logger.Error("[Server] Failed to write cypher export", "err", err)
		return err
	}
	return nil
}
