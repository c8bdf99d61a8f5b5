package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processLastParam reads ?last=N; missing or invalid means all entries.
func (h *handler) processLastParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("last"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
