package jobs

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"HospitalConnect/models"
	"HospitalConnect/notification"
	"HospitalConnect/services"
)

// ReminderJob mails every doctor a summary of the appointments booked for the
// current day. Failures are logged and skipped; there are no retries.
type ReminderJob struct {
	Appointments *services.AppointmentService
	Mailer       notification.Mailer
}

func NewReminderJob(appointments *services.AppointmentService, mailer notification.Mailer) *ReminderJob {
	return &ReminderJob{Appointments: appointments, Mailer: mailer}
}

// Start schedules the job every day at 08:00.
func (j *ReminderJob) Start() *cron.Cron {
	c := cron.New()
	c.AddFunc("0 8 * * *", func() {
		log.Println("Running daily appointment reminder job...")
		j.Run(time.Now())
	})
	c.Start()
	return c
}

/*
* List the appointments falling on the given day
* Group them by doctor
* Send one summary mail per doctor
 */
func (j *ReminderJob) Run(now time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	appointments, err := j.Appointments.ListBetween(ctx, start, end)
	if err != nil {
		log.Println("Error listing today's appointments:", err)
		return
	}

	byDoctor := make(map[string][]models.Appointment)
	for _, a := range appointments {
		byDoctor[a.DoctorEmail] = append(byDoctor[a.DoctorEmail], a)
	}

	for email, list := range byDoctor {
		sort.Slice(list, func(i, k int) bool {
			return list[i].AppointmentDate.Before(list[k].AppointmentDate)
		})
		body := buildSummary(list, start)
		if err := j.Mailer.Send(email, "Your appointments today", body); err != nil {
			log.Println("Reminder mail failed for", email, ":", err)
			continue
		}
	}
}

func buildSummary(appointments []models.Appointment, day time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\nYou have %d appointment(s) on %s:\n\n",
		appointments[0].DoctorName, len(appointments), day.Format("02 Jan 2006"))
	for _, a := range appointments {
		fmt.Fprintf(&b, "- %s  %s (%s)\n",
			a.AppointmentDate.Format("15:04"), a.PatientName, a.PatientPhoneNumber)
	}
	b.WriteString("\nBest regards,\nThe Hospital Team\n")
	return b.String()
}
