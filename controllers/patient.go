package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"HospitalConnect/models"
	"HospitalConnect/services"
	"HospitalConnect/utils"
)

type PatientController struct {
	Service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{Service: service}
}

/*
* Bind and validate the registration payload
* Pass to the service
 */
func (ctrl *PatientController) Register(c *gin.Context) {
	var req models.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	patient, err := ctrl.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Patient registered successfully", patient))
}

func (ctrl *PatientController) Login(c *gin.Context) {
	var req models.LoginPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	token, patient, err := ctrl.Service.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"token":   token,
		"patient": patient,
	})
}

func (ctrl *PatientController) FetchAll(c *gin.Context) {
	patients, err := ctrl.Service.FindAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Patients fetched successfully", patients))
}

func (ctrl *PatientController) FetchByPhone(c *gin.Context) {
	patient, err := ctrl.Service.FindByPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Patient fetched successfully", patient))
}

func (ctrl *PatientController) Update(c *gin.Context) {
	var req models.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	patient, err := ctrl.Service.Update(c.Request.Context(), c.Param("phoneNumber"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Patient updated successfully", patient))
}

func (ctrl *PatientController) Delete(c *gin.Context) {
	if err := ctrl.Service.Delete(c.Request.Context(), c.Param("phoneNumber")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Patient deleted successfully", nil))
}

// Profile echoes the claims the auth middleware put on the context.
func (ctrl *PatientController) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, utils.SuccessResponse("Profile fetched successfully", gin.H{
		"userId":      c.GetString("userId"),
		"phoneNumber": c.GetString("phoneNumber"),
	}))
}
