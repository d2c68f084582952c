package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the success envelope.
type APIResponse[T any] struct {
	Data   T           `json:"data"`
	Paging interface{} `json:"paging,omitempty"`
}

// ErrorResponse carries a message string or a field -> message map.
type ErrorResponse struct {
	Errors interface{} `json:"errors"`
}

func Success[T any](ctx *gin.Context, status int, data T) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{Data: data})
}

// Paged writes a page of results with its paging metadata.
func Paged[T any](ctx *gin.Context, data []T, paging interface{}) {
	if data == nil {
		data = []T{}
	}
	ctx.JSON(http.StatusOK, APIResponse[[]T]{Data: data, Paging: paging})
}

func Error(ctx *gin.Context, status int, errs interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, ErrorResponse{Errors: errs})
}

// Abort writes an error and stops the handler chain; used by middleware.
func Abort(ctx *gin.Context, status int, errs interface{}) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Errors: errs})
}
