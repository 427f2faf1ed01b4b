package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"HospitalConnect/models"
	"HospitalConnect/services"
	"HospitalConnect/utils"
)

type FeedbackController struct {
	Service *services.FeedbackService
}

func NewFeedbackController(service *services.FeedbackService) *FeedbackController {
	return &FeedbackController{Service: service}
}

func (ctrl *FeedbackController) Create(c *gin.Context) {
	var req models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	feedback, err := ctrl.Service.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, utils.SuccessResponse("Feedback created successfully", feedback))
}

func (ctrl *FeedbackController) FetchByDoctor(c *gin.Context) {
	doctorID, err := primitive.ObjectIDFromHex(c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid doctor id"))
		return
	}
	feedbacks, err := ctrl.Service.FindByDoctor(c.Request.Context(), doctorID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Feedback fetched successfully", feedbacks))
}

func (ctrl *FeedbackController) FetchByPatientPhone(c *gin.Context) {
	feedbacks, err := ctrl.Service.FindByPatientPhone(c.Request.Context(), c.Param("phoneNumber"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Feedback fetched successfully", feedbacks))
}

// Update requires the requester's phone number in the body; the service
// rejects it when it does not match the feedback's patient.
func (ctrl *FeedbackController) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid feedback id"))
		return
	}
	var req models.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	feedback, err := ctrl.Service.UpdateByPhone(c.Request.Context(), id, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Feedback updated successfully", feedback))
}

func (ctrl *FeedbackController) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse("invalid feedback id"))
		return
	}
	var req models.DeleteFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.FailedResponse(err.Error()))
		return
	}
	if err := ctrl.Service.RemoveByPhone(c.Request.Context(), id, req.PhoneNumber); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.SuccessResponse("Feedback deleted successfully", nil))
}
