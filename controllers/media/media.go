package controllers

import (
	"techgetafrica/config"
	"techgetafrica/middleware"
	"techgetafrica/utils"

	"github.com/gofiber/fiber/v2"
)

var uploadKinds = map[string]utils.UploadKind{
	"thumbnail": utils.UploadThumbnail,
	"video":     utils.UploadVideo,
	"file":      utils.UploadGeneric,
}

// UploadMedia stores a course asset on the configured storage backend.
// The kind query parameter selects the key prefix.
func UploadMedia(c *fiber.Ctx) error {
	kind, ok := uploadKinds[c.Query("kind", "file")]
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Unknown upload kind!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	maxBytes := int64(config.AppConfig.MaxUploadSizeMB) * 1024 * 1024
	if file.Size > maxBytes {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File exceeds the upload size limit!", nil)
	}

	result, err := utils.SaveUploadedFile(file, kind)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store file!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", result)
}
