package http

import (
	"github.com/gin-gonic/gin"
)

// processInterpretReq binds and validates the interpret request body.
func (h *handler) processInterpretReq(c *gin.Context) (interpretReq, error) {
	var req interpretReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processClassifyReq binds and validates the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processProcessReq binds and validates the process request body, accepting
// both the single and multi classification shapes.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
