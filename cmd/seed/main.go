// seed cria os dados mínimos de arranque de uma instalação nova:
// o utilizador SUPER_ADMIN inicial e as categorias base do catálogo.
//
// Uso: go run ./cmd/seed
// Configuração por env: SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD e as mesmas
// variáveis de base de dados da API. É idempotente: registos que já existem
// são deixados como estão.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agriconecta/agriconecta-api/internal/domain/entity"
	"github.com/agriconecta/agriconecta-api/internal/infrastructure/postgres"
	"github.com/agriconecta/agriconecta-api/pkg/config"
	"github.com/agriconecta/agriconecta-api/pkg/logger"
)

var baseCategories = []struct {
	name string
	slug string
}{
	{"Cereais e Farinhas", "cereais-e-farinhas"},
	{"Leguminosas", "leguminosas"},
	{"Tubérculos e Raízes", "tuberculos-e-raizes"},
	{"Frutas", "frutas"},
	{"Hortícolas", "horticolas"},
	{"Óleos e Condimentos", "oleos-e-condimentos"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || len(password) < 8 {
		log.Fatal().Msg("SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD (mínimo 8 caracteres) são requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	// SUPER_ADMIN inicial
	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		log.Fatal().Err(err).Msg("verificar admin existente")
	}
	if existing != nil {
		log.Info().Str("email", email).Msg("admin já existe, nada a fazer")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash da password")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleSuperAdmin,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("criar admin")
		}
		log.Info().Str("email", email).Msg("SUPER_ADMIN criado")
	}

	// Categorias base
	created := 0
	for _, c := range baseCategories {
		found, err := categoryRepo.GetBySlug(c.slug)
		if err != nil {
			log.Fatal().Err(err).Str("slug", c.slug).Msg("verificar categoria")
		}
		if found != nil {
			continue
		}
		now := time.Now()
		cat := &entity.Category{
			ID:        uuid.New().String(),
			Name:      c.name,
			Slug:      c.slug,
			Status:    "active",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(cat); err != nil {
			log.Fatal().Err(err).Str("slug", c.slug).Msg("criar categoria")
		}
		created++
	}
	log.Info().Int("criadas", created).Int("total", len(baseCategories)).Msg("categorias base")
}
