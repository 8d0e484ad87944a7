package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"retire-explorer/internal/domain"
	"retire-explorer/internal/service"
)

// ExplorerHandler mantiene dependencias para los endpoints del explorador.
type ExplorerHandler struct {
	logger   *zap.Logger
	explorer *service.ExplorerService
}

// NewExplorerHandler crea una instancia de ExplorerHandler.
func NewExplorerHandler(logger *zap.Logger, explorer *service.ExplorerService) *ExplorerHandler {
	return &ExplorerHandler{
		logger:   logger,
		explorer: explorer,
	}
}

// Health maneja GET /healthz.
func (h *ExplorerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListOptions maneja GET /options.
func (h *ExplorerHandler) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"options": h.explorer.AllOptions()})
}

// ListDimensionOptions maneja GET /options/:dimension.
func (h *ExplorerHandler) ListDimensionOptions(c *gin.Context) {
	dim, err := domain.ParseDimension(c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown dimension"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dimension": dim,
		"options":   h.explorer.Options(dim),
	})
}

// ScoreParameters maneja GET /score-parameters.
func (h *ExplorerHandler) ScoreParameters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"parameters": domain.ScoreParameters()})
}

// GetOutcome maneja GET /outcome. Los parámetros ausentes dejan la dimensión sin elegir.
func (h *ExplorerHandler) GetOutcome(c *gin.Context) {
	sel, err := h.explorer.SelectionFromIDs(c.Query("location"), c.Query("family"), c.Query("lifestyle"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	outcome, err := h.explorer.Outcome(sel)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"outcome":        outcome,
		"bands":          outcome.Scores.Bands(),
		"levels":         outcome.Scores.Levels(),
		"has_selections": sel.Complete(),
	})
}

// PostScores maneja POST /scores.
func (h *ExplorerHandler) PostScores(c *gin.Context) {
	var req struct {
		LocationID  string `json:"location_id" binding:"required"`
		FamilyID    string `json:"family_id" binding:"required"`
		LifestyleID string `json:"lifestyle_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid scores request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sel, err := h.explorer.SelectionFromIDs(req.LocationID, req.FamilyID, req.LifestyleID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	scores, err := h.explorer.Scores(sel)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores": scores,
		"bands":  scores.Bands(),
		"levels": scores.Levels(),
	})
}

// ListCombinations maneja GET /combinations. Con ?seed=N el orden es reproducible.
func (h *ExplorerHandler) ListCombinations(c *gin.Context) {
	var shuffler service.Shuffler
	if raw := c.Query("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		shuffler = service.NewSeededShuffler(seed)
	}

	c.JSON(http.StatusOK, gin.H{"combinations": h.explorer.Previews(shuffler)})
}

func (h *ExplorerHandler) writeError(c *gin.Context, err error) {
	var uerr *domain.UnknownOptionError
	switch {
	case errors.Is(err, service.ErrCatalogIncomplete):
		h.logger.Error("catalog lists an option without score table", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog incomplete"})
	case errors.As(err, &uerr):
		h.logger.Warn("unknown option requested",
			zap.String("dimension", string(uerr.Dimension)),
			zap.String("id", uerr.ID),
		)
		c.JSON(http.StatusNotFound, gin.H{
			"error":       "unknown option",
			"dimension":   uerr.Dimension,
			"id":          uerr.ID,
			"suggestions": uerr.Suggestions,
		})
	case errors.Is(err, service.ErrIncompleteSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "selection incomplete"})
	default:
		h.logger.Error("explorer request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compute outcome"})
	}
}
