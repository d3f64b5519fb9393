package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parkirku_backend/internals/configs"
	lectureModel "parkirku_backend/internals/features/academics/lectures/model"
	orderModel "parkirku_backend/internals/features/commerce/orders/model"
	productModel "parkirku_backend/internals/features/commerce/products/model"
	financeModel "parkirku_backend/internals/features/finance/payments/model"
	reservationModel "parkirku_backend/internals/features/parking/reservations/model"
	spaceModel "parkirku_backend/internals/features/parking/spaces/model"
	spotModel "parkirku_backend/internals/features/parking/spots/model"
	authModel "parkirku_backend/internals/features/users/auth/model"
	userModel "parkirku_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=parkirku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // plays nice with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] TunePool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

func WarmUpQueries() {
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("[WARN] warm-up query failed: %v", err)
	}
}

// MigrationModels is the full table set, parents before children so foreign
// keys resolve during AutoMigrate.
func MigrationModels() []interface{} {
	return []interface{}{
		&userModel.RoleModel{},
		&userModel.UserModel{},
		&userModel.UserProfileModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&spaceModel.ParkingSpaceModel{},
		&spaceModel.ParkingSpaceManagerModel{},
		&spaceModel.AvailabilityMonitorModel{},
		&spotModel.ParkingSpotModel{},
		&reservationModel.ParkingReservationManagerModel{},
		&reservationModel.ReservationModel{},
		&financeModel.PaymentMethodModel{},
		&financeModel.InvoiceModel{},
		&financeModel.PaymentModel{},
		&productModel.CategoryModel{},
		&productModel.ProductModel{},
		&orderModel.CustomerModel{},
		&orderModel.OrderModel{},
		&lectureModel.LecturerModel{},
		&lectureModel.LectureModel{},
	}
}

func AutoMigrate() {
	if err := DB.AutoMigrate(MigrationModels()...); err != nil {
		log.Fatalf("[ERROR] AutoMigrate failed: %v", err)
	}
	log.Println("[INFO] AutoMigrate done.")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
