package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/leftovers-tracker/backend/config"
	"github.com/leftovers-tracker/backend/internal/database"
	"github.com/leftovers-tracker/backend/internal/service"
	"github.com/leftovers-tracker/backend/internal/types"
)

type seedItem struct {
	name        string
	description string
	portion     float64
	location    string
	expiresIn   time.Duration
	tags        []string
}

var seedItems = []seedItem{
	{"Vegetable lasagna", "Half a tray from Sunday", 4, "fridge", 72 * time.Hour, []string{"pasta", "vegetarian"}},
	{"Chicken soup", "Big batch, freezes well", 6, "freezer", 30 * 24 * time.Hour, []string{"soup"}},
	{"Pad thai", "Takeout leftovers", 1.5, "fridge", 48 * time.Hour, []string{"takeout", "noodles"}},
	{"Chili con carne", "", 3, "freezer", 60 * 24 * time.Hour, []string{"spicy", "beef"}},
	{"Fried rice", "With egg and peas", 2, "fridge", 24 * time.Hour, []string{"rice"}},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	svc := service.NewLeftoverService(db)
	ctx := context.Background()

	for _, item := range seedItems {
		portion := item.portion
		expiry := strconv.FormatInt(time.Now().Add(item.expiresIn).UnixMilli(), 10)

		leftover, err := svc.Create(ctx, types.LeftoverInput{
			Name:            item.name,
			Description:     item.description,
			Portion:         &portion,
			StorageLocation: item.location,
			ExpiryDate:      expiry,
			Tags:            item.tags,
		})
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", item.name, err)
		}
		log.Printf("Seeded %s (%s)", leftover.Name, leftover.ID)
	}

	log.Printf("Seeded %d leftovers", len(seedItems))
}
