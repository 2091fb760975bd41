package main

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
	"hobbygraph/backend/internal/graph"
	"hobbygraph/backend/pkg/config"
	"hobbygraph/backend/pkg/logger"
)

// Seeds a handful of demo users and friendships through the repository so a
// fresh database has something to render.
func main() {
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.Neo4jURI,
		neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, ""),
	)
	if err != nil {
		log.Fatal("Failed to create Neo4j driver", zap.Error(err))
	}
	ctx := context.Background()
	defer driver.Close(ctx)

	if err := driver.VerifyConnectivity(ctx); err != nil {
		log.Fatal("Failed to verify Neo4j connectivity", zap.Error(err))
	}

	repo := graph.NewRepository(driver)

	seeds := []struct {
		username string
		age      int
		hobbies  []string
	}{
		{"alice", 30, []string{"chess", "hiking", "painting"}},
		{"bob", 27, []string{"chess", "cycling"}},
		{"carol", 34, []string{"hiking", "painting", "cooking"}},
		{"dave", 22, []string{"gaming"}},
	}

	ids := make([]string, 0, len(seeds))
	for _, s := range seeds {
		user, err := repo.CreateUser(ctx, s.username, s.age, s.hobbies)
		if err != nil {
			log.Fatal("Failed to create user", zap.String("username", s.username), zap.Error(err))
		}
		ids = append(ids, user.ID)
	}

	links := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for _, l := range links {
		if err := repo.LinkUsers(ctx, ids[l[0]], ids[l[1]]); err != nil {
			log.Fatal("Failed to link users", zap.Error(err))
		}
	}

	log.Info("Seed complete", zap.Int("users", len(ids)), zap.Int("links", len(links)))
}
