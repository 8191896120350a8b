package http

import (
	"github.com/gin-gonic/gin"

	"eindr-intent-engine/internal/middleware"
	"eindr-intent-engine/pkg/response"
)

// Interpret godoc
// @Summary     Interpret an utterance end to end
// @Description Segments the text into intents, classifies each segment, routes it to its domain handler, and persists the results with per-segment isolation.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string       true "Authenticated user id"
// @Param       body      body   interpretReq true "Utterance to interpret"
// @Success     200 {object} aggregateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Interpret(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAggregateResp(output))
}

// Classify godoc
// @Summary     Classify an utterance
// @Description Segments and classifies the text without persisting anything. Useful for previewing how an utterance would be processed.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Authenticated user id"
// @Param       body      body   classifyReq true "Utterance to classify"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.Text, req.multi())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// Process godoc
// @Summary     Process pre-classified intent data
// @Description Routes already-classified intent data (single or multi shape) through the domain handlers with per-segment isolation.
// @Tags        Intents
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Authenticated user id"
// @Param       body      body   processReq true "Classified intent data"
// @Success     200 {object} aggregateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "User Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAggregateResp(output))
}
