package handlers

import (
	"net/http"

	"vinixport_backend/internal/middleware"
	"vinixport_backend/internal/models"
	"vinixport_backend/internal/services"
	"vinixport_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewRequestHandler struct {
	*BaseHandler
	reviewService services.ReviewRequestService
}

func NewReviewRequestHandler(base *BaseHandler, reviewService services.ReviewRequestService) *ReviewRequestHandler {
	return &ReviewRequestHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewRequestHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/review-requests", h.RequireAuth())
	{
		reviews.POST("", middleware.RequireRoles(models.UserRoleMentee), h.Submit)
		reviews.GET("", h.List)
		reviews.GET("/:requestId", h.Get)
		reviews.PUT("/:requestId/complete", middleware.RequireRoles(models.UserRoleMentor), h.Complete)
	}

	// Проверка оплаты: ментор или админ
	admin := rg.Group("/admin", h.RequireAuth(), middleware.RequireRoles(models.UserRoleMentor, models.UserRoleAdmin))
	{
		admin.PUT("/approve-payment/:requestId", h.ApprovePayment)
		admin.PUT("/reject-payment/:requestId", h.RejectPayment)
	}
}

func (h *ReviewRequestHandler) Submit(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	// валидирует сервис после нормализации полей
	var req dto.SubmitReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.Submit(c.Request.Context(), h.GetDB(c), principal, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ReviewRequestHandler) List(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	list, err := h.reviewService.List(c.Request.Context(), h.GetDB(c), principal)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ReviewRequestHandler) Get(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	resp, err := h.reviewService.Get(c.Request.Context(), h.GetDB(c), principal, c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReviewRequestHandler) ApprovePayment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	resp, err := h.reviewService.ApprovePayment(c.Request.Context(), h.GetDB(c), principal, c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransitionResponse{
		Message: "Payment approved successfully",
		Request: resp,
	})
}

func (h *ReviewRequestHandler) RejectPayment(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	resp, err := h.reviewService.RejectPayment(c.Request.Context(), h.GetDB(c), principal, c.Param("requestId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransitionResponse{
		Message: "Payment rejected",
		Request: resp,
	})
}

func (h *ReviewRequestHandler) Complete(c *gin.Context) {
	principal, ok := h.GetPrincipal(c)
	if !ok {
		return
	}

	// тело необязательно: отзыв может быть пустым
	var req dto.CompleteReviewRequest
	if !h.BindOptionalJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.CompleteReview(c.Request.Context(), h.GetDB(c), principal, c.Param("requestId"), req.Feedback)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
