package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"academic-hub/internal/config"
	"academic-hub/internal/domain"
	pg "academic-hub/internal/infra/db/postgres"
	"academic-hub/internal/infra/logging"
	"academic-hub/internal/usecase"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	schemaPath := flag.String("schema", "deploy/postgres/init.sql", "path to the schema file")
	adminEmail := flag.String("admin-email", "", "bootstrap admin account email")
	adminPassword := flag.String("admin-password", "", "bootstrap admin account password")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, false)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := logging.New(cfg.Log, true)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	// ---- Schema (idempotent) ----
	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}
	fmt.Println("schema applied")

	txManager := pg.NewTxManager(pool)
	userUC := usecase.NewUserUseCase(pg.NewUserRepo(pool), txManager, logger)
	uniUC := usecase.NewUniversityUseCase(pg.NewUniversityRepo(pool), logger)

	// ---- Universities ----
	existing, err := uniUC.List(ctx)
	if err != nil {
		log.Fatalf("list universities: %v", err)
	}
	if len(existing) > 0 {
		fmt.Printf("%d universities already present. No changes.\n", len(existing))
	} else {
		seed := []struct {
			Name     string
			Location string
		}{
			{"University of Nairobi", "Nairobi"},
			{"Kenyatta University", "Nairobi"},
			{"Moi University", "Eldoret"},
			{"Jomo Kenyatta University of Agriculture and Technology", "Juja"},
			{"Egerton University", "Njoro"},
			{"Strathmore University", "Nairobi"},
		}
		for _, s := range seed {
			u, err := uniUC.Add(ctx, s.Name, s.Location)
			if err != nil {
				log.Fatalf("seed university %q: %v", s.Name, err)
			}
			fmt.Printf("seeded: %s (id=%s)\n", u.Name, u.ID)
		}
	}

	// ---- Bootstrap admin ----
	if *adminEmail != "" && *adminPassword != "" {
		admin, err := userUC.Register(ctx, *adminEmail, *adminPassword, "", "")
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				fmt.Printf("admin %s already registered. No changes.\n", *adminEmail)
			} else {
				log.Fatalf("register admin: %v", err)
			}
		} else {
			if err := userUC.PromoteToAdmin(ctx, admin.ID); err != nil {
				log.Fatalf("promote admin: %v", err)
			}
			fmt.Printf("admin created: %s (id=%s)\n", admin.Email, admin.ID)
		}
	}

	fmt.Println("seeding complete")
}
