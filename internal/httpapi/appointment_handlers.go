package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Leganyst/meetpoint/internal/model"
	"github.com/Leganyst/meetpoint/internal/service"
)

type createAppointmentRequest struct {
	TargetID string `json:"target_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Service  string `json:"service"`
	Notes    string `json:"notes"`
}

func (api *API) createAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	targetID, err := uuid.Parse(req.TargetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid target id"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	a, err := api.appointments.Create(ctx, session.ID, service.CreateAppointmentInput{
		TargetID: targetID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderAppointment(a))
}

func (api *API) getAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	a, err := api.appointments.Get(ctx, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderAppointment(a))
}

func (api *API) listMyAppointments(c *gin.Context) {
	filter, err := service.ParseFilter(c.Query("filter"))
	if err != nil {
		writeError(c, err)
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	appts, err := api.appointments.MyAppointments(ctx, session.ID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": renderAppointments(appts)})
}

type setStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (api *API) setAppointmentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}
	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	a, err := api.appointments.SetStatus(ctx, session.ID, id, model.AppointmentStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, renderAppointment(a))
}

type submitRatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

func (api *API) submitRating(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	session, err := api.directory.SessionParticipant(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	a, err := api.appointments.SubmitRating(ctx, session.ID, id, req.Score, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, renderAppointment(a))
}
