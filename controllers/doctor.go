package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/services"
	"HospitalConnect/utils"
)

type DoctorController struct {
	Service *services.DoctorService
}

func NewDoctorController(service *services.DoctorService) *DoctorController {
	return &DoctorController{Service: service}
}

func (ctrl *DoctorController) Register(c *gin.Context) {
	var req models.RegisterDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	doctor, err := ctrl.Service.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Doctor registered successfully", doctor))
}

func (ctrl *DoctorController) Login(c *gin.Context) {
	var req models.LoginDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	token, doctor, err := ctrl.Service.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"token":   token,
		"doctor":  doctor,
	})
}

func (ctrl *DoctorController) FetchAll(c *gin.Context) {
	doctors, err := ctrl.Service.FindAll(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Doctors fetched successfully", doctors))
}

func (ctrl *DoctorController) FetchBySpecialty(c *gin.Context) {
	doctors, err := ctrl.Service.FindBySpecialty(c.Request.Context(), c.Param("specialty"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Doctors fetched successfully", doctors))
}

func (ctrl *DoctorController) FetchByEmail(c *gin.Context) {
	doctor, err := ctrl.Service.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Doctor fetched successfully", doctor))
}

func (ctrl *DoctorController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid doctor id"))
		return
	}
	var req models.UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	doctor, err := ctrl.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Doctor updated successfully", doctor))
}

func (ctrl *DoctorController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid doctor id"))
		return
	}
	if err := ctrl.Service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Doctor deleted successfully", nil))
}

func (ctrl *DoctorController) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	if err := ctrl.Service.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("OTP sent to email", nil))
}

func (ctrl *DoctorController) VerifyOtp(c *gin.Context) {
	var req models.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	valid, err := ctrl.Service.VerifyOtp(c.Request.Context(), req.Email, req.Otp)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "valid": valid})
}

func (ctrl *DoctorController) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	if err := ctrl.Service.ResetPassword(c.Request.Context(), req); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Password has been reset successfully", nil))
}
