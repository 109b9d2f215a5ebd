package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mauv0809/fantasy-duels/internal/database"
	"github.com/mauv0809/fantasy-duels/internal/league"
	"github.com/mauv0809/fantasy-duels/internal/store"
)

const seededMatchdays = 5

var demoTeams = []struct{ name, owner, color string }{
	{"Los Galácticos", "Ana", "#f5c518"},
	{"Real Suciedad", "Bruno", "#1d4ed8"},
	{"Athletic de Sofá", "Carla", "#dc2626"},
	{"Rayo Vallekano", "Diego", "#16a34a"},
	{"Deportivo La Cuña", "Elena", "#7c3aed"},
}

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{"DB_NAME": "fantasy.db"}
	for _, key := range []string{"DB_NAME", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"} {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

// demoScores gives every team a score per matchday. The last team stops
// playing after the first two matchdays so the league has an inactive team.
func demoScores(teams []league.Team, rng *rand.Rand) []league.ScoreEntry {
	var entries []league.ScoreEntry
	for md := 1; md <= seededMatchdays; md++ {
		for i, t := range teams {
			points := 20 + rng.IntN(60)
			if i == len(teams)-1 && md > 2 {
				points = 0
			}
			entries = append(entries, league.ScoreEntry{Matchday: fmt.Sprintf("J%d", md), TeamID: t.ID, Points: points})
		}
	}
	return entries
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer db.Close()

	s := store.New(db)
	if err := s.Clear(); err != nil {
		log.Fatalf("Failed to clear league: %s", err)
	}

	teams := make([]league.Team, 0, len(demoTeams))
	for _, d := range demoTeams {
		team, err := s.AddTeam(d.name, d.owner, d.color)
		if err != nil {
			log.Fatalf("Failed to add team %s: %s", d.name, err)
		}
		teams = append(teams, team)
	}
	log.Info("Seeded teams", "count", len(teams))

	entries := demoScores(teams, rand.New(rand.NewPCG(2024, 2025)))
	if err := s.UpsertScores(entries); err != nil {
		log.Fatalf("Failed to seed scores: %s", err)
	}
	log.Info("Seeded scores", "entries", len(entries), "matchdays", seededMatchdays)
	log.Info("Seeding complete.")
}
