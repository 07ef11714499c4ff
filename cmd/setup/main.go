package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Maou3434/TOTS/internal/config"
	"github.com/Maou3434/TOTS/internal/database"
	"github.com/Maou3434/TOTS/internal/database/postgres"
	"github.com/Maou3434/TOTS/internal/domain"
)

// defaultDungeons is the catalog reconciled on every setup run. SeedDungeons
// only inserts names that are missing, so re-running is safe.
var defaultDungeons = []domain.Dungeon{
	{Name: "Goblin Cave", Rank: domain.RankE, Description: "A shallow warren, good for first outings.", MinLevel: 1},
	{Name: "Sunken Crypt", Rank: domain.RankD, Description: "Flooded burial halls beneath the old chapel.", MinLevel: 5},
	{Name: "Ashen Ruins", Rank: domain.RankC, Description: "What the dragonfire left of the border keep.", MinLevel: 10},
	{Name: "Frozen Bastion", Rank: domain.RankB, Description: "A fortress sealed in glacier ice.", MinLevel: 15},
	{Name: "Obsidian Spire", Rank: domain.RankA, Description: "The mage tower that should not still be standing.", MinLevel: 20},
	{Name: "Abyssal Rift", Rank: domain.RankS, Description: "The tear in the world. Few return.", MinLevel: 30},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// 1. Connect to default 'postgres' database to create the new database
	defaultConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, defaultConnString)
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 3. Run embedded migrations against the target database
	fmt.Println("Running migrations...")
	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 4. Reconcile the dungeon catalog
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	dungeons := make([]domain.Dungeon, len(defaultDungeons))
	copy(dungeons, defaultDungeons)
	for i := range dungeons {
		dungeons[i].ID = uuid.New()
	}

	if err := postgres.NewDungeonRepository(pool).SeedDungeons(ctx, dungeons); err != nil {
		log.Fatalf("Failed to seed dungeons: %v", err)
	}

	fmt.Println("Setup completed successfully.")
}
