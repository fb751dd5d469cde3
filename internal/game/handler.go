package game

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyline/internal/sim"
	"skyline/pkg/idgen"
	"skyline/pkg/logger"
)

type GameHandler struct {
	service *Service
	idgen   idgen.Generator
	logger  logger.Client
}

func NewGameHandler(s *Service, gen idgen.Generator, logger logger.Client) *GameHandler {
	return &GameHandler{
		service: s,
		idgen:   gen,
		logger:  logger,
	}
}

func (h *GameHandler) RegisterRoutes(router *gin.Engine) {
	g := router.Group("/v1/game/:player")
	g.GET("/state", h.StateHandler)
	g.POST("/flights", h.CreateFlightHandler)
	g.DELETE("/flights", h.DeleteFlightHandler)
	g.GET("/plan/check", h.CheckPlanHandler)
	g.POST("/advance", h.AdvanceHandler)
	g.POST("/planes", h.BuyPlaneHandler)
	g.DELETE("/planes/:registration", h.SellPlaneHandler)
	g.POST("/hubs/:city", h.UpsertHubHandler)
	g.GET("/routes/:origin/:destination", h.RouteInfoHandler)
	g.POST("/reset", h.ResetHandler)
}

func (h *GameHandler) StateHandler(c *gin.Context) {
	view, err := h.service.State(c.Request.Context(), c.Param("player"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) CreateFlightHandler(c *gin.Context) {
	var req CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	view, err := h.service.CreateFlight(c.Request.Context(), c.Param("player"), req)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *GameHandler) DeleteFlightHandler(c *gin.Context) {
	var req DeleteFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if err := h.service.DeleteFlight(c.Request.Context(), c.Param("player"), req); err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *GameHandler) CheckPlanHandler(c *gin.Context) {
	view, err := h.service.CheckPlan(c.Request.Context(), c.Param("player"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) AdvanceHandler(c *gin.Context) {
	settled, err := h.service.Advance(c.Request.Context(), c.Param("player"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, settled)
}

func (h *GameHandler) BuyPlaneHandler(c *gin.Context) {
	var req BuyPlaneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	view, err := h.service.BuyPlane(c.Request.Context(), c.Param("player"), req)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *GameHandler) SellPlaneHandler(c *gin.Context) {
	receipt, err := h.service.SellPlane(c.Request.Context(), c.Param("player"), c.Param("registration"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *GameHandler) UpsertHubHandler(c *gin.Context) {
	view, err := h.service.UpsertHub(c.Request.Context(), c.Param("player"), c.Param("city"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) RouteInfoHandler(c *gin.Context) {
	view, err := h.service.RouteInfo(c.Request.Context(),
		c.Param("player"), c.Param("origin"), c.Param("destination"))
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GameHandler) ResetHandler(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context(), c.Param("player")); err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reset": true})
}

// sendError maps engine error codes to HTTP statuses. Anything without a
// code is an infrastructure failure and gets a request id for correlation.
func (h *GameHandler) sendError(c *gin.Context, err error) {
	var simErr *sim.Error
	if errors.As(err, &simErr) {
		c.JSON(statusFor(simErr.Code), gin.H{
			"error": simErr.Message,
			"code":  string(simErr.Code),
		})
		return
	}

	requestID := h.idgen.NextID()
	h.logger.Error("request failed",
		logger.Field{Key: "request_id", Value: requestID},
		logger.Field{Key: "path", Value: c.FullPath()},
		logger.Field{Key: "err", Value: err.Error()},
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":      "Internal Server Error",
		"request_id": requestID,
	})
}

func statusFor(code sim.Code) int {
	switch code {
	case sim.CodeReferenceNotFound:
		return http.StatusNotFound
	case sim.CodeCapacityExceeded,
		sim.CodeInfrastructureMissing,
		sim.CodeInsufficientFunds,
		sim.CodeAssetInUse,
		sim.CodePlanInvalid,
		sim.CodeDuplicateFlight:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
