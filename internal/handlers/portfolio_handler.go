package handlers

import (
	"net/http"

	"vinixport_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PortfolioHandler - публичные маршруты, токен не нужен
type PortfolioHandler struct {
	*BaseHandler
	portfolioService services.PortfolioService
}

func NewPortfolioHandler(base *BaseHandler, portfolioService services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		BaseHandler:      base,
		portfolioService: portfolioService,
	}
}

func (h *PortfolioHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/portfolio/:userId", h.GetPortfolio)
	rg.GET("/approved-portfolios", h.ListApproved)
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.portfolioService.GetPortfolio(c.Request.Context(), h.GetDB(c), c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}

func (h *PortfolioHandler) ListApproved(c *gin.Context) {
	cards, err := h.portfolioService.ListApprovedPortfolios(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
