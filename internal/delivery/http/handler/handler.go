package handler

import (
	"errors"
	"net/http"

	"transport-console/internal/domain"
	"transport-console/pkg/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and application errors to HTTP statuses. A
// missing update/delete target is the caller's problem (404), everything
// categorized as invalid input answers 400.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}
}
