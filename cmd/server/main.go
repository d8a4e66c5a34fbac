package main

import (
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"repair_backend/internal/app/di"
	"repair_backend/internal/app/router"
	appointmentadapters "repair_backend/internal/feature/appointments/adapters"
	appointmenthandler "repair_backend/internal/feature/appointments/transport/handler"
	appointmentusecase "repair_backend/internal/feature/appointments/usecase"
	authadapters "repair_backend/internal/feature/auth/adapters"
	authhandler "repair_backend/internal/feature/auth/transport/handler"
	authusecase "repair_backend/internal/feature/auth/usecase"
	platformdb "repair_backend/internal/platform/db"
	platformredis "repair_backend/internal/platform/redis"
	"repair_backend/internal/platform/session"
)

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis（セッションストア）
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Falling back to MySQL sessions.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// SESSION_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("[WARN] SESSION_SECRET is not set. Set a strong secret in production.")
	}
	codec := session.NewCookieCodec(secret)

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	sessionRepo := di.NewSessionRepository(rdb, db)
	appointmentRepo := appointmentadapters.NewAppointmentMySQL(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo)
	appointmentsUC := appointmentusecase.NewAppointmentsUsecase(appointmentRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, codec)
	appointmentsH := appointmenthandler.NewAppointmentHandler(appointmentsUC)

	// ルータ生成
	router := router.NewRouter(authH, appointmentsH, sessionRepo, codec)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
