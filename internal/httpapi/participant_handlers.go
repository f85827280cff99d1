package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (api *API) listParticipants(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	participants, err := api.directory.ListParticipants(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": renderParticipants(participants)})
}

func (api *API) getParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := api.directory.GetParticipant(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderParticipant(p))
}

// nearbyParticipants runs the radius query around the session participant.
func (api *API) nearbyParticipants(c *gin.Context) {
	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	radiusKm := 0.0
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius_km"})
			return
		}
	}

	matches, err := api.directory.Nearby(ctx, session.ID, radiusKm)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"participants": renderNearby(matches)})
}

type updateLocationRequest struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	City      string     `json:"city"`
	Address   string     `json:"address"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (api *API) updateLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant id"})
		return
	}

	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	loc := locationFromRequest(req)
	p, err := api.directory.UpdateLocation(ctx, id, loc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderParticipant(p))
}
