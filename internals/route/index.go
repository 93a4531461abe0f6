package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deviceRoute "presensiku_backend/internals/features/devices/devices/route"
	trxUserDeviceRoute "presensiku_backend/internals/features/devices/trx_user_devices/route"
	institutionRoute "presensiku_backend/internals/features/institutions/route"
	presenceRoute "presensiku_backend/internals/features/presences/route"
	rmqRoute "presensiku_backend/internals/features/rmq/route"
	rmqService "presensiku_backend/internals/features/rmq/service"
	defaultScheduleRoute "presensiku_backend/internals/features/scheduler/default_schedules/route"
	holidayRoute "presensiku_backend/internals/features/scheduler/holidays/route"
	shiftingRoute "presensiku_backend/internals/features/scheduler/shiftings/route"
	unitRoute "presensiku_backend/internals/features/units/route"
	uploaderRoute "presensiku_backend/internals/features/uploader/route"
	authRoute "presensiku_backend/internals/features/users/auth/route"
	userRoute "presensiku_backend/internals/features/users/users/route"
	authMiddleware "presensiku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/auth publik, sisanya di belakang AuthMiddleware.
func SetupRoutes(app *fiber.App, db *gorm.DB, publisher *rmqService.Publisher) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/api/auth"), db)

	protected := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(protected.Group("/users"), db)

	log.Println("[INFO] Setting up InstitutionRoutes...")
	institutionRoute.InstitutionRoutes(protected.Group("/institutions"), db)

	log.Println("[INFO] Setting up UnitRoutes...")
	unitRoute.UnitRoutes(protected.Group("/units"), db)

	log.Println("[INFO] Setting up Scheduler routes...")
	defaultScheduleRoute.DefaultScheduleRoutes(protected.Group("/default-schedules"), db)
	holidayRoute.HolidayRoutes(protected.Group("/holidays"), db)
	shiftingRoute.ShiftingRoutes(protected.Group("/shiftings"), db)

	log.Println("[INFO] Setting up Device routes...")
	deviceRoute.DeviceRoutes(protected.Group("/devices"), db)
	trxUserDeviceRoute.TrxUserDeviceRoutes(protected.Group("/user-devices"), db)

	log.Println("[INFO] Setting up PresenceRoutes...")
	presenceRoute.PresenceRoutes(protected.Group("/presences"), db)

	log.Println("[INFO] Setting up RmqRoutes...")
	rmqRoute.RmqRoutes(protected.Group("/rmq"), publisher)

	log.Println("[INFO] Setting up UploaderRoutes...")
	uploaderRoute.UploaderRoutes(protected.Group("/uploads"))

	log.Println("✅ Semua route berhasil dipasang")
}
