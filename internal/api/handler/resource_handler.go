package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csecompass/catalog/internal/api/web"
	"github.com/csecompass/catalog/internal/core/domain"
	"github.com/csecompass/catalog/internal/core/ports"
)

// ResourceHandler serves the resource browser as JSON and as HTML.
type ResourceHandler struct {
	service ports.ResourceService
}

func NewResourceHandler(service ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// List handles GET /api/v1/resources.
//
// @Summary      Browse resources
// @Description  Fetches the resource list once and filters it by category and by a case-insensitive substring of title or description. A failed fetch yields state failed with no items.
// @Tags         resources
// @Produce      json
// @Param        category  query     string  false  "Category selector, default All"
// @Param        search    query     string  false  "Search text"
// @Success      200       {object}  browseResourcesResponse
// @Failure      400       {object}  errorResponse
// @Router       /api/v1/resources [get]
func (h *ResourceHandler) List(c echo.Context) error {
	var q browseResourcesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	browser, err := h.service.Browse(c.Request().Context(), ports.BrowseResourcesInput{
		Category: q.Category,
		Search:   q.Search,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBrowseResourcesResponse(browser))
}

// Get handles GET /api/v1/resources/:id.
//
// @Summary      Get a resource
// @Tags         resources
// @Produce      json
// @Param        id   path      string  true  "Resource id"
// @Success      200  {object}  resourceResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /api/v1/resources/{id} [get]
func (h *ResourceHandler) Get(c echo.Context) error {
	r, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResourceResponse(*r))
}

// Categories handles GET /api/v1/categories.
//
// @Summary      List category selectors
// @Tags         resources
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/v1/categories [get]
func (h *ResourceHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{
		Default:    domain.CategoryAll,
		Categories: domain.CategorySelectors(),
	})
}

// Page handles GET /resources. An unknown category falls back to All
// instead of failing the page.
func (h *ResourceHandler) Page(c echo.Context) error {
	category := c.QueryParam("category")
	if !domain.IsCategorySelector(category) {
		category = domain.CategoryAll
	}

	browser, err := h.service.Browse(c.Request().Context(), ports.BrowseResourcesInput{
		Category: category,
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, web.PageResources, web.ResourcesView{
		Title:   "Resources",
		Browser: browser,
	})
}

// DetailPage handles GET /resources/:id.
func (h *ResourceHandler) DetailPage(c echo.Context) error {
	r, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, web.PageResourceDetail, web.ResourceDetailView{
		Title:    r.Title,
		Resource: r,
	})
}
