//cmd/seeder/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/powercave/mail-service/internal/config"
	"github.com/powercave/mail-service/internal/db"
)

// Seeds the local database with sample email log history for manual
// testing of the dedup window and the tenant report endpoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Connect(cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := db.Migrate(conn); err != nil {
		log.Fatal(err)
	}

	seedFiles := []string{
		"seed/email_logs.sql",
	}

	for _, file := range seedFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read %s: %v", file, err)
		}

		if _, err := conn.Exec(string(content)); err != nil {
			log.Fatalf("failed to execute %s: %v", file, err)
		}
		fmt.Printf("Seeded: %s\n", file)
	}

	fmt.Println("Database seeding completed successfully!")
}
