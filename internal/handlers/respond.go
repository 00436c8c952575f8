package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/motomeet/mm/internal/apperr"
	"github.com/motomeet/mm/internal/helpers"
	"github.com/motomeet/mm/internal/middleware"
	"github.com/motomeet/mm/internal/models"
)

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.SuccessResponse(data))
}

func respondPage(c *gin.Context, data interface{}, meta *models.Meta) {
	c.JSON(http.StatusOK, models.ApiResponse{Success: true, Data: data, Meta: meta})
}

func respondErr(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), models.ErrorResponse(err))
}

// bindJSON binds the body and converts binding failures into the
// validation error shape, enumerating every violated field.
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondErr(c, models.AsValidationError(err))
		return false
	}
	return true
}

func identityFrom(c *gin.Context) (*helpers.AuthIdentity, bool) {
	identity, ok := middleware.Identity(c)
	if !ok {
		respondErr(c, apperr.Unauthorized("authentication required"))
		return nil, false
	}
	return identity, true
}

func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondErr(c, apperr.BadRequest("invalid "+param))
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) models.Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return models.NormalizePagination(page, limit)
}
