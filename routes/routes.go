package routes

import (
	"github.com/gin-gonic/gin"

	"HospitalConnect/controllers"
	"HospitalConnect/middleware"
)

type Handlers struct {
	Patient     *controllers.PatientController
	Doctor      *controllers.DoctorController
	Appointment *controllers.AppointmentController
	Feedback    *controllers.FeedbackController
}

func Routes(r *gin.Engine, h *Handlers) {

	// public
	r.POST("/patients/register", h.Patient.Register)
	r.POST("/patients/login", h.Patient.Login)
	r.POST("/doctors/register", h.Doctor.Register)
	r.POST("/doctors/login", h.Doctor.Login)
	r.GET("/doctors", h.Doctor.FetchAll)
	r.GET("/doctors/specialty/:specialty", h.Doctor.FetchBySpecialty)
	r.GET("/doctors/email/:email", h.Doctor.FetchByEmail)
	r.POST("/doctors/forgot-password", h.Doctor.ForgotPassword)
	r.POST("/doctors/verify-otp", h.Doctor.VerifyOtp)
	r.POST("/doctors/reset-password", h.Doctor.ResetPassword)

	// private routes
	r.Use(middleware.JWTAuth())

	r.GET("/patients", h.Patient.FetchAll)
	r.GET("/patients/profile", h.Patient.Profile)
	r.GET("/patients/phone/:phoneNumber", h.Patient.FetchByPhone)
	r.PUT("/patients/phone/:phoneNumber", h.Patient.Update)
	r.DELETE("/patients/phone/:phoneNumber", h.Patient.Delete)

	r.PUT("/doctors/:id", h.Doctor.Update)
	r.DELETE("/doctors/:id", h.Doctor.Delete)

	appointment := r.Group("/appointments")
	{
		appointment.POST("/create", h.Appointment.Create)
		appointment.GET("/phone/:phoneNumber", h.Appointment.FetchByPhone)
		appointment.GET("/doctor/:email", h.Appointment.FetchByDoctorEmail)
		appointment.GET("/:id", h.Appointment.FetchByID)
		appointment.PUT("/:id", h.Appointment.Update)
		appointment.DELETE("/:id", h.Appointment.Delete)
	}

	feedback := r.Group("/feedback")
	{
		feedback.POST("/create", h.Feedback.Create)
		feedback.GET("/doctor/:doctorId", h.Feedback.FetchByDoctor)
		feedback.GET("/patient/:phoneNumber", h.Feedback.FetchByPatientPhone)
		feedback.PUT("/:id", h.Feedback.Update)
		feedback.DELETE("/:id", h.Feedback.Delete)
	}
}
