package main

import (
	"log"
	"os"

	"feature-prefs-be/internal/model"
	"feature-prefs-be/pkg/database"

	"github.com/joho/godotenv"
)

type seedGroup struct {
	group    model.Group
	features []model.Feature
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding feature catalog...")

	// Initial catalog. Feature names carry the "Basic"/"Core" markers the
	// survey policy keys on.
	catalog := []seedGroup{
		{
			group: model.Group{Name: "Wellness", Description: "Habits, mood and mindfulness tracking"},
			features: []model.Feature{
				{Name: "Wellness Basic Feature", Description: "Daily mood check-ins", DefaultEnabled: false},
				{Name: "Wellness Pro", Description: "Guided breathing and sleep insights", DefaultEnabled: false},
			},
		},
		{
			group: model.Group{Name: "Productivity", Description: "Planning and focus tools"},
			features: []model.Feature{
				{Name: "Productivity Core Planner", Description: "Daily task planner", DefaultEnabled: false},
				{Name: "Focus Sessions", Description: "Timed deep-work sessions", DefaultEnabled: false},
				{Name: "Weekly Review", Description: "Guided weekly retrospective", DefaultEnabled: false},
			},
		},
		{
			group: model.Group{Name: "Social", Description: "Sharing and accountability"},
			features: []model.Feature{
				{Name: "Essential Sharing", Description: "Share progress with friends", DefaultEnabled: false},
				{Name: "Group Challenges", Description: "Compete in shared goals", DefaultEnabled: false},
			},
		},
	}

	for _, sg := range catalog {
		// Idempotent: skip groups that already exist by name.
		var existing model.Group
		if err := db.Where("name = ?", sg.group.Name).First(&existing).Error; err == nil {
			log.Printf("Group '%s' already exists, skipping...", sg.group.Name)
			continue
		}

		group := sg.group
		if err := db.Create(&group).Error; err != nil {
			log.Printf("Error creating group '%s': %v", group.Name, err)
			continue
		}

		for _, f := range sg.features {
			f.GroupId = group.Id
			if err := db.Create(&f).Error; err != nil {
				log.Printf("Error creating feature '%s': %v", f.Name, err)
			} else {
				log.Printf("Created feature: %s (group %s)", f.Name, group.Name)
			}
		}
	}

	log.Println("Catalog seeding completed!")
}
