package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"burritoapi/internal/auth"
	"burritoapi/internal/config"
	"burritoapi/internal/db"
	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/logger"
	"burritoapi/internal/repository"
	"burritoapi/internal/service"
)

//go:embed fixture.json
var defaultFixture []byte

// Fixture is the seed file layout: users, each with the reviews they own.
type Fixture struct {
	Users []SeedUser `json:"users"`
}

// SeedUser is one user in the fixture.
type SeedUser struct {
	Username string                 `json:"username"`
	Email    string                 `json:"email"`
	Password string                 `json:"password"`
	Burritos []service.BurritoInput `json:"burritos"`
}

// Report counts what a seed run did.
type Report struct {
	UsersCreated    int
	UsersSkipped    int
	BurritosCreated int
	BurritosSkipped int
}

func main() {
	file := flag.String("file", "", "path to a JSON fixture (defaults to the embedded fixture)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info").Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.LogLevel)

	fixture, err := loadFixture(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("load fixture")
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	hasher := auth.NewBcryptHasher(cfg.PasswordCost)
	authService := service.NewAuthService(repository.NewUserRepository(gormDB), hasher, auth.NewJWTService(cfg.JWTSecret))
	burritoService := service.NewBurritoService(repository.NewBurritoRepository(gormDB))

	ctx := log.WithContext(context.Background())
	report, err := seed(ctx, fixture, authService, burritoService)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().
		Int("users_created", report.UsersCreated).
		Int("users_skipped", report.UsersSkipped).
		Int("burritos_created", report.BurritosCreated).
		Int("burritos_skipped", report.BurritosSkipped).
		Msg("seed completed")
}

func loadFixture(path string) (Fixture, error) {
	data := defaultFixture
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Fixture{}, fmt.Errorf("read fixture: %w", err)
		}
		data = b
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	return f, nil
}

// seed creates every fixture user and their reviews through the services.
// Users that already exist are skipped together with their reviews, and
// reviews that fail validation are skipped individually.
func seed(ctx context.Context, f Fixture, authService service.AuthService, burritoService service.BurritoService) (Report, error) {
	log := logger.FromContext(ctx)
	var r Report

	for _, u := range f.Users {
		user, err := authService.Signup(ctx, u.Username, u.Email, u.Password)
		if err != nil {
			var verr *apperrors.ValidationError
			if errors.Is(err, apperrors.ErrDuplicateUser) || errors.As(err, &verr) {
				log.Warn().Err(err).Str("email", u.Email).Msg("skipping user")
				r.UsersSkipped++
				r.BurritosSkipped += len(u.Burritos)
				continue
			}
			return r, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		r.UsersCreated++

		for _, in := range u.Burritos {
			if _, err := burritoService.Create(ctx, user.ID, in); err != nil {
				var verr *apperrors.ValidationError
				if errors.As(err, &verr) {
					log.Warn().Err(err).Str("email", u.Email).Msg("skipping burrito")
					r.BurritosSkipped++
					continue
				}
				return r, fmt.Errorf("create burrito for %s: %w", u.Email, err)
			}
			r.BurritosCreated++
		}
	}
	return r, nil
}
