package main

import (
	"log"

	"stage/config"
	"stage/database"
	"stage/models"

	"github.com/google/uuid"
)

// Seeds the database with a small set of mentors, courses, users and
// enrollments for local development.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	mentors := []models.Mentor{
		{Name: "Traversy Media", WebsiteLink: "https://www.traversymedia.com", Bio: "Web development tutorials"},
		{Name: "Fireship", WebsiteLink: "https://fireship.io", Bio: "High-intensity code videos"},
		{Name: "The Net Ninja", WebsiteLink: "https://netninja.dev", Bio: "Black-belt your dev skills"},
	}
	for i := range mentors {
		if err := db.Where(models.Mentor{Name: mentors[i].Name}).FirstOrCreate(&mentors[i]).Error; err != nil {
			log.Fatalf("Seeding mentor %q failed: %v", mentors[i].Name, err)
		}
	}

	courses := []models.Course{
		{MentorID: mentors[0].ID, Title: "Go Crash Course", WebsiteLink: "https://example.com/go-crash-course", Duration: 240},
		{MentorID: mentors[0].ID, Title: "REST APIs From Scratch", WebsiteLink: "https://example.com/rest-apis", Duration: 360},
		{MentorID: mentors[1].ID, Title: "PostgreSQL in 100 Seconds and Beyond", WebsiteLink: "https://example.com/postgres", Duration: 90},
		{MentorID: mentors[2].ID, Title: "Docker Masterclass", WebsiteLink: "https://example.com/docker", Duration: 420},
	}
	for i := range courses {
		if err := db.Where(models.Course{Title: courses[i].Title}).FirstOrCreate(&courses[i]).Error; err != nil {
			log.Fatalf("Seeding course %q failed: %v", courses[i].Title, err)
		}
	}

	users := []models.User{
		{ClerkUserID: "user_" + uuid.NewString(), Username: "alice-dev", Email: "alice@example.com", FirstName: "Alice", LastName: "Nguyen"},
		{ClerkUserID: "user_" + uuid.NewString(), Username: "bob_codes", Email: "bob@example.com", FirstName: "Bob", LastName: "Marsh"},
	}
	for i := range users {
		if err := db.Where(models.User{Username: users[i].Username}).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Seeding user %q failed: %v", users[i].Username, err)
		}
	}

	enrollments := []models.Enrollment{
		{UserID: users[0].ID, CourseID: courses[0].ID, MentorID: courses[0].MentorID, Status: models.StatusInProgress, Progress: 40},
		{UserID: users[0].ID, CourseID: courses[2].ID, MentorID: courses[2].MentorID, Status: models.StatusCompleted, Progress: 100},
		{UserID: users[1].ID, CourseID: courses[3].ID, MentorID: courses[3].MentorID, Status: models.StatusPending, Progress: 0},
	}
	for i := range enrollments {
		e := &enrollments[i]
		err := db.Where(models.Enrollment{UserID: e.UserID, CourseID: e.CourseID}).FirstOrCreate(e).Error
		if err != nil {
			log.Fatalf("Seeding enrollment user=%d course=%d failed: %v", e.UserID, e.CourseID, err)
		}
	}

	log.Printf("Seeding completed: %d mentors, %d courses, %d users, %d enrollments",
		len(mentors), len(courses), len(users), len(enrollments))
}
