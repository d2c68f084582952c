package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-contact-management/config"
	"github.com/oksasatya/go-contact-management/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "test"
	password := "rahasia"
	name := "test"
	token := "test"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if _, err := db.Exec(`
		INSERT INTO users (username, password, name, token)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password, token = EXCLUDED.token, updated_at = now()
	`, username, hash, name, token); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: username=%s password=%s token=%s\n", username, password, token)

	var contactID int64
	err = db.QueryRow(`
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, 'John', 'Doe', 'john@example.com', '0899999')
		RETURNING id
	`, username).Scan(&contactID)
	if err != nil {
		log.Fatalf("failed to seed contact: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, 'Jalan Test', 'Jakarta', 'DKI Jakarta', 'Indonesia', '11111')
	`, contactID); err != nil {
		log.Fatalf("failed to seed address: %v", err)
	}
	fmt.Printf("seeded contact id=%d with one address\n", contactID)
}
