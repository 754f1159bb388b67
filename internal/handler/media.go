package handler

import (
	"FlashVault/internal/storage"
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeMedia streams a stored blob. The wildcard path is the object key,
// e.g. /api/media/user_alice/diagram.png.
func ServeMedia(c *gin.Context) {
	object := strings.TrimPrefix(c.Param("object"), "/")
	if object == "" || strings.Contains(object, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid object"})
		return
	}

	obj, info, err := storage.Default.GetObject(c.Request.Context(), object)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer obj.Close()

	// Keys keep their original extension even after WEBP re-encode, so the
	// content type comes from the stored metadata or the bytes themselves.
	contentType := info.ContentType
	var reader io.Reader = obj
	if contentType == "" {
		head := make([]byte, 512)
		n, readErr := io.ReadFull(obj, head)
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			c.JSON(http.StatusInternalServerError, gin.H{"error": readErr.Error()})
			return
		}
		contentType = http.DetectContentType(head[:n])
		reader = io.MultiReader(bytes.NewReader(head[:n]), obj)
	}

	c.DataFromReader(http.StatusOK, info.Size, contentType, reader, nil)
}
