package api

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/api/middleware"
	"github.com/PIG208/Airbook/internal/auth"
	"github.com/PIG208/Airbook/internal/filter"
)

// searchRequest is the request body for the search endpoints. Criteria
// arrive nested under filter_data; top-level keys are not criteria.
type searchRequest struct {
	FilterData filter.Criteria `json:"filter_data"`
}

// Search runs the named filter with the caller's session identity. The
// body is the raw criteria bag; the core validates and constrains it.
func (a Api) Search(c *gin.Context) {
	a.runSearch(c, middleware.SessionFromContext(c))
}

// SearchPublic is the anonymous search surface. Any session the caller
// happens to hold is ignored, so only public filters ever resolve here.
func (a Api) SearchPublic(c *gin.Context) {
	a.runSearch(c, nil)
}

func (a Api) runSearch(c *gin.Context, session *auth.Session) {
	name, _ := c.Params.Get("filter")

	// An empty body means no criteria; anything else must decode. The
	// EOF check keeps chunked requests working, where ContentLength is
	// unknown until the body is read.
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}
	criteria := req.FilterData
	if criteria == nil {
		criteria = filter.Criteria{}
	}

	rows, err := a.airbook.Search(c.Request.Context(), session, name, criteria)
	if err != nil {
		errorResponse(c, err)
		return
	}
	successResponse(c, rows)
}
