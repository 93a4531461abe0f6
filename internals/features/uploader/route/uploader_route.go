package route

import (
	"github.com/gofiber/fiber/v2"

	"presensiku_backend/internals/features/uploader/controller"
)

func UploaderRoutes(router fiber.Router) {
	ctrl := controller.NewUploaderController()

	router.Post("/image", ctrl.UploadImage)
	router.Delete("/image", ctrl.DeleteImage)
}
