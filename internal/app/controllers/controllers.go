package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// pathID parses the :id route parameter. Anything that is not a positive
// integer yields ok=false and is answered as not found by the callers.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// bindOptionalJSON binds a JSON body when one was sent. An empty body binds
// to the zero value, which partial updates treat as "change nothing".
// Chunked requests report an unknown length, so an immediate EOF from the
// decoder also counts as empty.
func bindOptionalJSON(ctx *gin.Context, obj interface{}) error {
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return binding.Validator.ValidateStruct(obj)
	}
	if err := ctx.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return binding.Validator.ValidateStruct(obj)
		}
		return err
	}
	return nil
}
