package handlers

import (
	"net/http"

	"vinixport_backend/internal/services"
	"vinixport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	*BaseHandler
	certificateService services.CertificateService
}

func NewCertificateHandler(base *BaseHandler, certificateService services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		BaseHandler:        base,
		certificateService: certificateService,
	}
}

func (h *CertificateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	certificates := rg.Group("/certificates", h.RequireAuth())
	{
		certificates.POST("", h.Create)
		certificates.GET("", h.ListMine)
		certificates.DELETE("/:id", h.Delete)
	}
}

func (h *CertificateHandler) Create(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	var req dto.CreateCertificateRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cert, err := h.certificateService.Create(c.Request.Context(), h.GetDB(c), principal.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cert)
}

func (h *CertificateHandler) ListMine(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	certs, err := h.certificateService.ListMine(c.Request.Context(), h.GetDB(c), principal.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, certs)
}

func (h *CertificateHandler) Delete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	if err := h.certificateService.Delete(c.Request.Context(), h.GetDB(c), principal.UserID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Certificate deleted"})
}
