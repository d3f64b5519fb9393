package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	lectureRoute "parkirku_backend/internals/features/academics/lectures/route"
	orderRoute "parkirku_backend/internals/features/commerce/orders/route"
	productRoute "parkirku_backend/internals/features/commerce/products/route"
	paymentRoute "parkirku_backend/internals/features/finance/payments/route"
	reservationRoute "parkirku_backend/internals/features/parking/reservations/route"
	spaceRoute "parkirku_backend/internals/features/parking/spaces/route"
	spotRoute "parkirku_backend/internals/features/parking/spots/route"
	authRoute "parkirku_backend/internals/features/users/auth/route"
	userRoute "parkirku_backend/internals/features/users/user/route"
	authMiddleware "parkirku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	SetupBaseRoutes(app, db)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Every entity route hangs off /api behind the JWT middleware; the
	// role gates inside each route file decide who may mutate what.
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	spotRoute.ParkingSpotRoutes(api, db)
	spaceRoute.ParkingSpaceRoutes(api, db)
	reservationRoute.ReservationRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	productRoute.ProductRoutes(api, db)
	orderRoute.OrderRoutes(api, db)
	lectureRoute.LectureRoutes(api, db)
}
