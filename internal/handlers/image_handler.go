package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	images ImageUploader
}

// NewImageHandler returns the image upload handler.
func NewImageHandler(images ImageUploader) *ImageHandler {
	return &ImageHandler{images: images}
}

// Upload stores the multipart "image" field and answers with its URL.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to retrieve image")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return fiber.NewError(fiber.StatusBadRequest, "file is not an image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to open image")
	}
	defer file.Close()

	url, err := h.images.Put(c.UserContext(), fileHeader.Filename, contentType, file, fileHeader.Size)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"url": url})
}
