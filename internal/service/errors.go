package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/settleflow/settleflow/internal/storage"
)

// respondStorageError maps a storage error to 404 when the entity is missing
// and 500 otherwise, so database failures are not reported as not-found.
func respondStorageError(c *gin.Context, err error, notFoundMsg, failureMsg string) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
}
