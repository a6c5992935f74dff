package db

import (
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/trimhub/booking-api/internal/config"
	"github.com/trimhub/booking-api/internal/models"
)

// No máximo um agendamento não cancelado por (service, instante).
// Índice parcial: CANCELED e COMPLETED liberam o slot.
const slotIndexDDL = `
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot
        ON bookings (service_id, date)
        WHERE status IN ('PENDING', 'CONFIRMED')
    `

// IsUniqueViolation reconhece violação de índice único do Postgres
// (SQLSTATE 23505) em qualquer ponto da cadeia de erros.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.Service{},
		&models.User{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Sem o índice a janela de corrida do create reabre; subir sem ele
	// não é aceitável (falha, por exemplo, com duplicatas ativas
	// pré-existentes que precisam ser saneadas antes).
	if err := db.Exec(slotIndexDDL).Error; err != nil {
		log.Fatalf("failed to create slot index: %v", err)
	}

	if err := db.Exec(`
        UPDATE barbershops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `).Error; err != nil {
		log.Fatalf("failed to backfill timezones: %v", err)
	}

	// bootstrap de admin por configuração, sem endpoint público
	if cfg.AdminEmail != "" {
		if err := db.Exec(
			`UPDATE users SET role = ? WHERE email = ?`,
			string(models.RoleAdmin), cfg.AdminEmail,
		).Error; err != nil {
			log.Fatalf("failed to promote admin user: %v", err)
		}
	}

	return db
}
