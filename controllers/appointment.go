package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/services"
	"HospitalConnect/utils"
)

type AppointmentController struct {
	Service *services.AppointmentService
}

func NewAppointmentController(service *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Service: service}
}

func (ctrl *AppointmentController) Create(c *gin.Context) {
	var req models.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	appointment, err := ctrl.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Appointment created successfully", appointment))
}

func (ctrl *AppointmentController) FetchByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid appointment id"))
		return
	}
	appointment, err := ctrl.Service.FindByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Appointment fetched successfully", appointment))
}

func (ctrl *AppointmentController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid appointment id"))
		return
	}
	var req models.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	appointment, err := ctrl.Service.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Appointment updated successfully", appointment))
}

func (ctrl *AppointmentController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid appointment id"))
		return
	}
	if err := ctrl.Service.DeleteByID(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Appointment deleted successfully", nil))
}

func (ctrl *AppointmentController) FetchByPhone(c *gin.Context) {
	appointments, err := ctrl.Service.FindByPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Appointments fetched successfully", appointments))
}

func (ctrl *AppointmentController) FetchByDoctorEmail(c *gin.Context) {
	appointments, err := ctrl.Service.FindByDoctorEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Appointments fetched successfully", appointments))
}
