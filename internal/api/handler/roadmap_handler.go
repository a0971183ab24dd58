package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csecompass/catalog/internal/api/web"
	"github.com/csecompass/catalog/internal/core/ports"
)

// RoadmapHandler serves the roadmap browser as JSON and as HTML.
type RoadmapHandler struct {
	service ports.RoadmapService
}

func NewRoadmapHandler(service ports.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{service: service}
}

// List handles GET /api/v1/roadmaps.
//
// @Summary      Browse roadmaps
// @Description  Fetches the roadmap list once and splits it into featured and other roadmaps, both in source order.
// @Tags         roadmaps
// @Produce      json
// @Success      200  {object}  browseRoadmapsResponse
// @Router       /api/v1/roadmaps [get]
func (h *RoadmapHandler) List(c echo.Context) error {
	browser, err := h.service.Browse(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBrowseRoadmapsResponse(browser))
}

// Get handles GET /api/v1/roadmaps/:id.
//
// @Summary      Get a roadmap
// @Tags         roadmaps
// @Produce      json
// @Param        id   path      string  true  "Roadmap id"
// @Success      200  {object}  roadmapResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/v1/roadmaps/{id} [get]
func (h *RoadmapHandler) Get(c echo.Context) error {
	r, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoadmapResponse(*r))
}

// Page handles GET /roadmaps.
func (h *RoadmapHandler) Page(c echo.Context) error {
	browser, err := h.service.Browse(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, web.PageRoadmaps, web.RoadmapsView{
		Title:   "Roadmaps",
		Browser: browser,
	})
}

// DetailPage handles GET /roadmaps/:id.
func (h *RoadmapHandler) DetailPage(c echo.Context) error {
	r, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, web.PageRoadmapDetail, web.RoadmapDetailView{
		Title:   r.Title,
		Roadmap: r,
	})
}
