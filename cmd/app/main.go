package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"nexquery/internal/adapters/repl"
	"nexquery/internal/app"
	"nexquery/internal/config"
	"nexquery/internal/core"
	"nexquery/internal/db"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	bands := core.Bands{
		AdminMin:  cfg.Bands.AdminMin,
		AssignMin: cfg.Bands.AssignMin,
		AssignMax: cfg.Bands.AssignMax,
	}

	employees := core.NewEmployeeService(pool, bands)
	payroll := core.NewPayrollService(pool)
	svc := app.NewAppService(employees, payroll)
	sess := core.NewSession(bands, cfg.Login.MaxAttempts)

	reader := bufio.NewReader(os.Stdin)
	if !repl.Login(ctx, svc, sess, reader) {
		return
	}
	repl.Run(ctx, svc, sess, reader)

	fmt.Println("Goodbye!")
}
