package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PIG208/Airbook/internal/apierror"
)

// successResponse renders the `{result, data}` envelope every endpoint
// answers with.
func successResponse(c *gin.Context, data interface{}) {
	body := gin.H{"result": "success"}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// errorResponse maps err to its HTTP status and renders the error
// envelope. Non-APIErrors deliberately surface as a generic message so
// SQL text and stack detail never reach a client.
func errorResponse(c *gin.Context, err error) {
	status := apierror.MapErrorToHTTPStatus(err)
	message := "Something went wrong internally!"
	var data interface{}
	if apiErr, ok := err.(apierror.APIError); ok {
		message = apiErr.Message
		if _, nested := apiErr.Details.(error); !nested {
			data = apiErr.Details
		}
	}
	body := gin.H{"result": "error", "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// badRequest renders a validation or binding failure.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"result": "error", "message": err.Error()})
}
