package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"symbol_backend/internal/app/di"
	"symbol_backend/internal/app/router"
	authadapters "symbol_backend/internal/feature/auth/adapters"
	authhandler "symbol_backend/internal/feature/auth/transport/handler"
	authusecase "symbol_backend/internal/feature/auth/usecase"
	resolutionadapters "symbol_backend/internal/feature/resolution/adapters"
	resolutionhandler "symbol_backend/internal/feature/resolution/transport/handler"
	resolutionusecase "symbol_backend/internal/feature/resolution/usecase"
	suggesthandler "symbol_backend/internal/feature/suggest/transport/handler"
	suggestusecase "symbol_backend/internal/feature/suggest/usecase"
	infradb "symbol_backend/internal/platform/db"
	jwtmw "symbol_backend/internal/platform/jwt"
	infraredis "symbol_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without registry cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	refRepo := resolutionadapters.NewReferenceRepository(db)
	registryRepo := di.NewRegistryRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	resolverUC := resolutionusecase.NewResolverUsecase(registryRepo, refRepo)
	referenceUC := resolutionusecase.NewReferenceUsecase(refRepo, refRepo)
	suggestUC := suggestusecase.NewSuggestUsecase(refRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	resolutionH := resolutionhandler.NewResolutionHandler(resolverUC)
	referenceH := resolutionhandler.NewReferenceHandler(referenceUC)
	suggestH := suggesthandler.NewSuggestHandler(suggestUC)

	// ルータ生成
	router := router.NewRouter(authH, resolutionH, referenceH, suggestH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
