package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/citruspartners/citrus_ledger_app/internal/apperrors"
	portssvc "github.com/citruspartners/citrus_ledger_app/internal/core/ports/services"
	"github.com/citruspartners/citrus_ledger_app/internal/dto"
	"github.com/citruspartners/citrus_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partnerHandler handles HTTP requests for partner profiles.
type partnerHandler struct {
	partnerService portssvc.PartnerSvcFacade
}

// newPartnerHandler creates a new partnerHandler.
func newPartnerHandler(partnerService portssvc.PartnerSvcFacade) *partnerHandler {
	return &partnerHandler{
		partnerService: partnerService,
	}
}

// listPartners godoc
// @Summary List partners
// @Description Retrieves all registered partners
// @Tags partners
// @Produce json
// @Success 200 {object} dto.ListPartnersResponse
// @Failure 500 {object} map[string]string "Failed to list partners"
// @Security BearerAuth
// @Router /partners [get]
func (h *partnerHandler) listPartners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	partners, err := h.partnerService.ListPartners(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list partners from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list partners"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartnersResponse(partners))
}

// getPartner godoc
// @Summary Get a single partner
// @Description Retrieves one partner by ID
// @Tags partners
// @Produce json
// @Param partnerID path string true "Partner ID"
// @Success 200 {object} dto.PartnerResponse
// @Failure 404 {object} map[string]string "Partner not found"
// @Failure 500 {object} map[string]string "Failed to retrieve partner"
// @Security BearerAuth
// @Router /partners/{partnerID} [get]
func (h *partnerHandler) getPartner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partnerID := c.Param("partnerID")

	partner, err := h.partnerService.GetPartnerByID(c.Request.Context(), partnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Partner not found", slog.String("partner_id", partnerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
			return
		}
		logger.Error("Failed to get partner from service", slog.String("error", err.Error()), slog.String("partner_id", partnerID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve partner"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartnerResponse(partner))
}

// registerPartnerRoutes registers partner profile routes
func registerPartnerRoutes(group *gin.RouterGroup, partnerService portssvc.PartnerSvcFacade) {
	h := newPartnerHandler(partnerService)

	partners := group.Group("/partners")
	{
		partners.GET("", h.listPartners)
		partners.GET("/:partnerID", h.getPartner)
	}
}
