package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/relcatalog/internal/app/models/dto"
	"github.com/yigit/relcatalog/internal/middleware"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes
// a 400 response and returns false.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.BadRequest(ctx, "Invalid "+entity+" ID", name)
		return 0, false
	}
	return id, true
}

// includes reports whether ?include= names relation
func includes(ctx *gin.Context, relation string) bool {
	for _, v := range ctx.QueryArray("include") {
		if v == relation {
			return true
		}
	}
	return false
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

func respondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func respondPage(ctx *gin.Context, items interface{}, pagination dto.PaginationInfo) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}))
}

func respondDeleted(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: message}))
}
