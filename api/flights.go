package api

import (
	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/api/middleware"
	model2 "github.com/PIG208/Airbook/api/model"
)

// CreateFlight schedules a new flight for the staff member's airline.
func (a Api) CreateFlight(c *gin.Context) {
	var req model2.CreateFlight
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ValidateCreateFlight(); err != nil {
		badRequest(c, err)
		return
	}

	session := middleware.SessionFromContext(c)
	airline, err := a.airbook.StaffAirline(c.Request.Context(), session.Username)
	if err != nil {
		errorResponse(c, err)
		return
	}
	if err := a.airbook.CreateFlight(c.Request.Context(), req.ToFlight(airline)); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, nil)
}

// CreateAirport registers a new airport.
func (a Api) CreateAirport(c *gin.Context) {
	var req model2.CreateAirport
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ValidateCreateAirport(); err != nil {
		badRequest(c, err)
		return
	}
	if err := a.airbook.CreateAirport(c.Request.Context(), req.ToAirport()); err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, nil)
}

// CreateAirplane registers a new airplane for the staff member's airline.
func (a Api) CreateAirplane(c *gin.Context) {
	var req model2.CreateAirplane
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.ValidateCreateAirplane(); err != nil {
		badRequest(c, err)
		return
	}

	session := middleware.SessionFromContext(c)
	airline, err := a.airbook.StaffAirline(c.Request.Context(), session.Username)
	if err != nil {
		errorResponse(c, err)
		return
	}
	id, err := a.airbook.CreateAirplane(c.Request.Context(), req.ToAirplane(airline))
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, gin.H{"plane_id": id})
}
