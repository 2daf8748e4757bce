package provider

import (
	"testing"

	"github.com/comunidades/feed-api/internal/config"
	"github.com/comunidades/feed-api/internal/models"
	"github.com/comunidades/feed-api/internal/repository"
)

func TestNewContainerPostgREST(t *testing.T) {
	cfg := &config.Config{
		Store: config.StoreConfig{
			Driver:  config.StoreDriverPostgREST,
			URL:     "https://example.supabase.co",
			AnonKey: "anon",
		},
	}
	c, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	if _, ok := c.PostRepo.(*repository.PostgRESTPostRepository); !ok {
		t.Fatalf("expected postgrest post repository, got %T", c.PostRepo)
	}
	if _, ok := c.ComunidadeRepo.(*repository.PostgRESTComunidadeRepository); !ok {
		t.Fatalf("expected postgrest comunidade repository, got %T", c.ComunidadeRepo)
	}
	if c.PostService == nil || c.ComunidadeService == nil {
		t.Fatalf("services should be initialized")
	}
}

func TestNewContainerSQL(t *testing.T) {
	previous := models.DB
	t.Cleanup(func() { models.DB = previous })
	if err := models.InitDB("sqlite", "file:provider_sql?mode=memory&cache=shared", models.DBPoolConfig{MaxOpenConns: 1}, false); err != nil {
		t.Fatalf("init db failed: %v", err)
	}

	c, err := NewContainer(&config.Config{Store: config.StoreConfig{Driver: config.StoreDriverSQL}})
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	if _, ok := c.PostRepo.(*repository.GormPostRepository); !ok {
		t.Fatalf("expected gorm post repository, got %T", c.PostRepo)
	}
}

func TestNewContainerSQLWithoutDatabase(t *testing.T) {
	previous := models.DB
	models.DB = nil
	t.Cleanup(func() { models.DB = previous })

	if _, err := NewContainer(&config.Config{Store: config.StoreConfig{Driver: config.StoreDriverSQL}}); err == nil {
		t.Fatalf("expected error when database is not initialized")
	}
}

func TestNewContainerRejectsUnknownDriver(t *testing.T) {
	if _, err := NewContainer(&config.Config{Store: config.StoreConfig{Driver: "mongo"}}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
