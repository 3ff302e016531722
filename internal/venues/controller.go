package venues

import (
	"net/http"

	"holidaze/internal/availability"
	"holidaze/internal/shared/middleware"
	"holidaze/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

//  BROWSING

func (c *Controller) GetCatalog(ctx *gin.Context) {
	var query CatalogQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	catalog, err := c.service.LoadCatalog(ctx.Request.Context(), middleware.VisitorID(ctx), LoadRequest{
		Query: query.Query,
		Page:  query.Page,
		Reset: query.Reset,
	})
	if err != nil {
		response.RespondError(ctx, "Failed to load venues", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", toCatalogResponse(catalog), nil)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	detail, err := c.service.GetVenue(ctx.Request.Context(), id, middleware.CurrentSession(ctx))
	if err != nil {
		response.RespondError(ctx, "Failed to get venue", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", detail, nil)
}

func (c *Controller) GetAvailability(ctx *gin.Context) {
	var query AvailabilityQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	var from availability.Day
	if query.From != "" {
		parsed, err := availability.ParseDay(query.From)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
			return
		}
		from = parsed
	}

	view, err := c.service.GetAvailability(ctx.Request.Context(), ctx.Param("id"), middleware.CurrentSession(ctx), from, query.Months)
	if err != nil {
		response.RespondError(ctx, "Failed to get availability", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability retrieved successfully", view, nil)
}

//  MANAGER

func (c *Controller) ListManagedVenues(ctx *gin.Context) {
	venues, err := c.service.ListManagedVenues(ctx.Request.Context(), middleware.CurrentSession(ctx))
	if err != nil {
		response.RespondError(ctx, "Failed to get your venues", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", venues, nil)
}

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), middleware.CurrentSession(ctx), req)
	if err != nil {
		response.RespondError(ctx, "Failed to create venue", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created successfully", venue, nil)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), middleware.CurrentSession(ctx), id, req)
	if err != nil {
		response.RespondError(ctx, "Failed to update venue", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated successfully", venue, nil)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	if err := c.service.DeleteVenue(ctx.Request.Context(), middleware.CurrentSession(ctx), id); err != nil {
		response.RespondError(ctx, "Failed to delete venue", err)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue deleted successfully", nil, nil)
}
