package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tixly/internal/admin"
	"tixly/internal/events"
	"tixly/internal/shared/config"
	"tixly/internal/shared/database"
	"tixly/internal/shared/jsontypes"
	"tixly/internal/tickets"
	"tixly/internal/users"
	"tixly/internal/vendors"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Tixly Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"favorites",
		"withdrawals",
		"payments",
		"tickets",
		"orders",
		"ticket_types",
		"events",
		"vendors",
		"users",
		"system_settings",
	}

	tx := s.db.Postgres.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds demo users, a vendor with events and tiers, and settings.
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if _, err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	vendorID, err := s.SeedVendor()
	if err != nil {
		return fmt.Errorf("failed to seed vendor: %w", err)
	}

	if err := s.SeedEvents(vendorID); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	if err := s.SeedSettings(); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates one admin account and two regular buyers.
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key   string
		name  string
		email string
		phone string
	}{
		{"admin", "Platform Admin", "admin@tixly.io", "+1-555-0100"},
		{"user1", "Ava Thompson", "ava.thompson@example.com", "+1-555-0101"},
		{"user2", "Noah Patel", "noah.patel@example.com", "+1-555-0102"},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:       uuid.New(),
			Name:     userData.name,
			Email:    userData.email,
			Phone:    userData.phone,
			Password: string(hashedPassword),
			Status:   users.StatusActive,
		}

		if err := s.db.Postgres.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s\n", user.Email)
	}

	return userIDs, nil
}

// SeedVendor creates one approved demo vendor.
func (s *Seeder) SeedVendor() (uuid.UUID, error) {
	fmt.Println("  🏢 Seeding vendor...")

	vendor := vendors.Vendor{
		ID:           uuid.New(),
		Name:         "Riverside Events",
		Email:        "hello@riverside-events.example",
		Phone:        "+1-555-0200",
		CompanyName:  "Riverside Events Ltd",
		BusinessType: "live entertainment",
		EventTypes:   jsontypes.StringList{"concert", "festival", "conference"},
		Description:  "Full-service event production across the metro area.",
		Status:       vendors.StatusApproved,
	}

	if err := s.db.Postgres.Create(&vendor).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	fmt.Printf("    ✅ Created vendor: %s\n", vendor.Name)
	return vendor.ID, nil
}

// SeedEvents creates a handful of active events with ticket tiers.
func (s *Seeder) SeedEvents(vendorID uuid.UUID) error {
	fmt.Println("  🎪 Seeding events...")

	eventsData := []struct {
		title       string
		description string
		category    string
		location    string
		daysFromNow int
		price       float64
		capacity    int
		tiers       []struct {
			tierType string
			price    float64
			quantity int
			features []string
		}
	}{
		{
			title:       "Riverside Summer Concert",
			description: "An open-air evening of live music by the river.",
			category:    "music",
			location:    "Riverside Amphitheater",
			daysFromNow: 30,
			price:       45,
			capacity:    500,
			tiers: []struct {
				tierType string
				price    float64
				quantity int
				features []string
			}{
				{"general", 45, 400, []string{"lawn seating"}},
				{"vip", 120, 100, []string{"front row", "meet and greet"}},
			},
		},
		{
			title:       "Tech Forward Conference",
			description: "A one-day conference on practical software engineering.",
			category:    "technology",
			location:    "Harbor Convention Center",
			daysFromNow: 45,
			price:       150,
			capacity:    300,
			tiers: []struct {
				tierType string
				price    float64
				quantity int
				features []string
			}{
				{"standard", 150, 250, []string{"all talks", "lunch"}},
				{"workshop", 280, 50, []string{"all talks", "lunch", "hands-on workshop"}},
			},
		},
		{
			title:       "Street Food Festival",
			description: "Local vendors, live cooking and tasting stations.",
			category:    "food",
			location:    "Central Market Square",
			daysFromNow: 15,
			price:       20,
			capacity:    1000,
			tiers: []struct {
				tierType string
				price    float64
				quantity int
				features []string
			}{
				{"entry", 20, 1000, []string{"all-day entry"}},
			},
		},
	}

	for _, eventData := range eventsData {
		event := events.Event{
			ID:          uuid.New(),
			Title:       eventData.title,
			Description: eventData.description,
			Category:    eventData.category,
			Location:    eventData.location,
			EventDate:   time.Now().AddDate(0, 0, eventData.daysFromNow),
			StartTime:   "18:00",
			EndTime:     "23:00",
			Price:       eventData.price,
			Capacity:    eventData.capacity,
			VendorID:    vendorID,
			Status:      events.StatusActive,
		}

		if err := s.db.Postgres.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", event.Title, err)
		}
		fmt.Printf("    ✅ Created event: %s\n", event.Title)

		for _, tier := range eventData.tiers {
			ticketType := tickets.TicketType{
				ID:       uuid.New(),
				EventID:  event.ID,
				Type:     tier.tierType,
				Price:    tier.price,
				Quantity: tier.quantity,
				Features: jsontypes.StringList(tier.features),
			}

			if err := s.db.Postgres.Create(&ticketType).Error; err != nil {
				return fmt.Errorf("failed to create ticket type %s: %w", tier.tierType, err)
			}
			fmt.Printf("      ✅ Created tier: %s (%d seats)\n", tier.tierType, tier.quantity)
		}
	}

	return nil
}

// SeedSettings creates the platform settings row with defaults.
func (s *Seeder) SeedSettings() error {
	fmt.Println("  ⚙️ Seeding settings...")

	settings := admin.SystemSetting{
		ID:                        uuid.New(),
		PlatformName:              "Tixly",
		PlatformDescription:       "Multi-vendor e-ticketing platform",
		SupportEmail:              "support@tixly.io",
		DefaultCurrency:           "USD",
		CommissionRate:            5,
		MaxTicketsPerOrder:        10,
		RequireVendorVerification: true,
	}

	if err := s.db.Postgres.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	fmt.Println("    ✅ Created platform settings")
	return nil
}
