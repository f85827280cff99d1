package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/model"
)

func (api *API) getSession(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderParticipant(p))
}

type setSessionRequest struct {
	ParticipantID string `json:"participant_id" binding:"required"`
}

func (api *API) setSession(c *gin.Context) {
	var req setSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := uuid.Parse(req.ParticipantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := api.directory.SetSession(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderParticipant(p))
}

func (api *API) clearSession(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := api.directory.ClearSession(ctx); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func locationFromRequest(req updateLocationRequest) model.Location {
	loc := model.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		City:      req.City,
		Address:   req.Address,
	}
	if req.UpdatedAt != nil {
		loc.LastUpdated = req.UpdatedAt.UTC()
	} else {
		loc.LastUpdated = time.Now().UTC()
	}
	return loc
}
