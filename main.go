package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"HospitalConnect/config"
	"HospitalConnect/controllers"
	"HospitalConnect/jobs"
	"HospitalConnect/notification"
	"HospitalConnect/repository"
	"HospitalConnect/routes"
	"HospitalConnect/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error in loading the ENV")
	}

	if err := config.ConnectDB(); err != nil {
		log.Fatal("Could not connect to MongoDB:", err)
	}
	if err := config.ConnectRedis(); err != nil {
		log.Fatal("Could not connect to Redis:", err)
	}

	mailer := notification.NewSMTPMailer()

	patientStore := repository.NewPatientMongo(config.OpenCollection(config.PatientCollection))
	doctorStore := repository.NewDoctorMongo(config.OpenCollection(config.DoctorCollection))
	appointmentStore := repository.NewAppointmentMongo(config.OpenCollection(config.AppointmentCollection))
	feedbackStore := repository.NewFeedbackMongo(config.OpenCollection(config.FeedbackCollection))
	otpStore := repository.NewRedisOTPStore(config.RedisClient())

	otpService := services.NewOtpService(otpStore, mailer, config.EnvDuration("OTP_TTL", 0))
	patientService := services.NewPatientService(patientStore)
	doctorService := services.NewDoctorService(doctorStore, mailer, otpService)
	appointmentService := services.NewAppointmentService(appointmentStore, patientStore, doctorStore)
	feedbackService := services.NewFeedbackService(feedbackStore, patientStore, doctorStore)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Env("CORS_ORIGIN", "http://localhost:3001")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.Routes(r, &routes.Handlers{
		Patient:     controllers.NewPatientController(patientService),
		Doctor:      controllers.NewDoctorController(doctorService),
		Appointment: controllers.NewAppointmentController(appointmentService),
		Feedback:    controllers.NewFeedbackController(feedbackService),
	})

	jobs.NewReminderJob(appointmentService, mailer).Start()

	if err := r.Run(":" + config.Env("PORT", "3000")); err != nil {
		log.Fatal("Server failed:", err)
	}
}
