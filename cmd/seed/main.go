package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/contactbook-api/config"
	"github.com/oksasatya/contactbook-api/pkg/helpers"
)

// Seeds a demo account plus a deterministic set of contacts for trying
// out the search endpoint locally.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "demo"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, password, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, username, hash, "Demo User").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d username=%s password=%s\n", userID, username, password)

	for i := 0; i < 20; i++ {
		var contactID int64
		err = db.QueryRow(`
			INSERT INTO contacts (user_id, first_name, last_name, email, phone)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, userID,
			fmt.Sprintf("first%d", i),
			fmt.Sprintf("last%d", i),
			fmt.Sprintf("demo%d@example.com", i),
			fmt.Sprintf("08123%d", i),
		).Scan(&contactID)
		if err != nil {
			log.Fatalf("failed to seed contact %d: %v", i, err)
		}
		if i == 0 {
			if _, err := db.Exec(`
				INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, contactID, "Jalan Sudirman 1", "Jakarta", "DKI Jakarta", "Indonesia", "12190"); err != nil {
				log.Fatalf("failed to seed address: %v", err)
			}
		}
	}
	fmt.Println("seeded 20 contacts (first0..first19) and one address")
}
