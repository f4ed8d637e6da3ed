package main

import (
	"context"
	"log"
	"time"

	"nexquery/internal/config"
	"nexquery/internal/db"
)

// verify-db is a deployment diagnostic: it checks connectivity, the
// presence of every table the application queries, and that at least one
// administrator exists in the reserved band.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("[CONNECT] failed: %v", err)
	}
	defer pool.Close()
	log.Println("[CONNECT] success")

	tables := []string{
		"employees",
		"job_titles",
		"employee_job_titles",
		"division",
		"employee_division",
		"payroll",
	}
	for _, table := range tables {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)",
			table).Scan(&exists)
		if err != nil {
			log.Fatalf("[SCHEMA] failed to check table %s: %v", table, err)
		}
		if !exists {
			log.Fatalf("[SCHEMA] missing table: %s (have migrations run?)", table)
		}
		log.Printf("[SCHEMA] table %s ok", table)
	}

	var admins int
	err = pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM employee_job_titles WHERE job_title_id >= $1",
		cfg.Bands.AdminMin).Scan(&admins)
	if err != nil {
		log.Fatalf("[SEED] failed to count administrators: %v", err)
	}
	if admins == 0 {
		log.Printf("[SEED] warning: no administrator accounts (job_title_id >= %d)", cfg.Bands.AdminMin)
	} else {
		log.Printf("[SEED] %d administrator account(s) found", admins)
	}

	log.Println("[DONE] database verified")
}
