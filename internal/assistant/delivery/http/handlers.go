package http

import (
	"github.com/gin-gonic/gin"

	"desktop-assistant/pkg/response"
)

// Submit godoc
// @Summary     Submit an utterance
// @Description Runs one assistant turn for the text and returns what was done.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Utterance"
// @Success     200 {object} submitResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Assistant is exiting"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Assistant not running"
// @Router      /api/v1/utterances [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.Submit(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSubmitResp(res))
}

// Transcript godoc
// @Summary     Get the transcript
// @Description Returns the conversation transcript, oldest first.
// @Tags        Assistant
// @Produce     json
// @Param       last query int false "Only the last N entries"
// @Success     200 {object} transcriptResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/transcript [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.Transcript(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcript: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTranscriptResp(entries, h.processLastParam(c)))
}

// Status godoc
// @Summary     Get assistant status
// @Description Returns the current assistant status (Available, Thinking, Searching, Answering, Exiting).
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, statusResp{Status: string(h.uc.Status())})
}
