// Package handlers exposes the loaded ownership registry over HTTP.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/asakaida/landtree/internal/services"
	"github.com/asakaida/landtree/internal/services/ownership"
	"github.com/asakaida/landtree/pkg/cache"
)

// TreeHandler serves ownership tree queries.
type TreeHandler struct {
	registry services.RegistryInterface
	cache    cache.Cache // nil when the render cache is disabled
	logger   *zap.Logger
}

// TreeResponse is the JSON form of a rendered ownership tree.
type TreeResponse struct {
	CompanyID string `json:"company_id"`
	RootID    string `json:"root_id"`
	FromRoot  bool   `json:"from_root"`
	Tree      string `json:"tree"`
}

// NewTreeHandler creates a TreeHandler. cache may be nil.
func NewTreeHandler(registry services.RegistryInterface, c cache.Cache, logger *zap.Logger) *TreeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeHandler{
		registry: registry,
		cache:    c,
		logger:   logger,
	}
}

// Register registers the handler's routes.
func (h *TreeHandler) Register(e *echo.Echo) {
	e.GET("/v1/companies/:id/tree", h.GetTree)
	e.GET("/v1/health", h.Health)
}

// GetTree renders the ownership tree for a company.
//
//	GET /v1/companies/:id/tree?from_root=true&format=json
//
// By default the company itself roots the render; from_root=true resolves
// its top-level ancestor first. The response is the plain-text tree unless
// format=json is requested.
func (h *TreeHandler) GetTree(c echo.Context) error {
	companyID := c.Param("id")
	fromRoot := c.QueryParam("from_root") == "true"

	tree, err := h.renderTree(c, companyID, fromRoot)
	if err != nil {
		var unknown *ownership.UnknownCompanyError
		if errors.As(err, &unknown) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("company %s not found", unknown.ID))
		}
		h.logger.Error("tree render failed",
			zap.String("company_id", companyID),
			zap.Bool("from_root", fromRoot),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render tree")
	}

	if c.QueryParam("format") == "json" {
		rootID := companyID
		if fromRoot {
			// The render above already validated the company, so the
			// resolver cannot fail here with an unknown ID.
			rootID, err = h.registry.RootOf(companyID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to resolve root")
			}
		}
		return c.JSON(http.StatusOK, &TreeResponse{
			CompanyID: companyID,
			RootID:    rootID,
			FromRoot:  fromRoot,
			Tree:      tree,
		})
	}

	return c.String(http.StatusOK, tree)
}

// Health reports service status and the size of the loaded registry.
func (h *TreeHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"companies": h.registry.CompanyCount(),
	})
}

// renderTree returns the rendered tree, consulting the cache when enabled.
func (h *TreeHandler) renderTree(c echo.Context, companyID string, fromRoot bool) (string, error) {
	key := fmt.Sprintf("tree:%s:%t", companyID, fromRoot)

	if h.cache != nil {
		if tree, ok := h.cache.Get(c.Request().Context(), key); ok {
			return tree, nil
		}
	}

	tree, err := h.registry.Tree(companyID, fromRoot)
	if err != nil {
		return "", err
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request().Context(), key, tree); err != nil {
			h.logger.Warn("failed to cache rendered tree", zap.String("key", key), zap.Error(err))
		}
	}
	return tree, nil
}
