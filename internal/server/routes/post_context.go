package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OFFIS-RIT/carekg/internal/server/middleware"
	"github.com/OFFIS-RIT/carekg/internal/util"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/query"
)

// PostContextHandler resolves the entities of a question and returns their
// neighborhood as a context block.
func PostContextHandler(c echo.Context) error {
	type contextBody struct {
		Query string `json:"query" validate:"required"`
		Hops  int    `json:"hops" validate:"omitempty,min=0,max=5"`
		Trace bool   `json:"trace"`
	}

	type contextResponse struct {
		Message string                    `json:"message,omitempty"`
		Query   string                    `json:"query,omitempty"`
		Seeds   []string                  `json:"seeds,omitempty"`
		Found   bool                      `json:"found"`
		Context string                    `json:"context,omitempty"`
		Trace   *query.QueryTraceSnapshot `json:"trace,omitempty"`
	}

	data := new(contextBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, contextResponse{
			Message: "Invalid request body",
		})
	}

	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, contextResponse{
			Message: "Invalid request body",
		})
	}

	q := util.SanitizeText(data.Query)
	if q == "" {
		return c.JSON(http.StatusBadRequest, contextResponse{
			Message: "Invalid request body",
		})
	}

	app := c.(*middleware.AppContext).App
	hops := data.Hops
	if hops == 0 {
		hops = app.DefaultHops
	}

	var opts []query.LocalQueryClientOption
	var trace *query.QueryTrace
	if data.Trace {
		trace = query.NewQueryTrace()
		opts = append(opts, query.WithTracer(trace))
	}

	client, err := query.NewLocalQueryClient(query.NewLocalQueryClientParams{
		Graph:    app.Graph,
		MaxSeeds: app.MaxSeeds,
	}, opts...)
	if err != nil {
		logger.Error("[Server] Failed to create query client", "err", err)
		return c.JSON(http.StatusInternalServerError, contextResponse{
			Message: "Internal server error",
		})
	}

	result, err := client.GetContext(c.Request().Context(), q, hops)
	if err != nil {
		logger.Error("[Server] Failed to get context", "query", q, "err", err)
		return c.JSON(http.StatusInternalServerError, contextResponse{
			Message: "Internal server error",
		})
	}

	resp := contextResponse{
		Query:   result.Query,
		Seeds:   result.Seeds,
		Found:   result.Found(),
		Context: result.String(),
	}
	if trace != nil {
		snap := trace.Snapshot()
		resp.Trace = &snap
	}

	return c.JSON(http.StatusOK, resp)
}
