package i18n

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes {message, error?}. Errors that do not carry a code
// become a generic 500; the caller is expected to have logged them.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	e, ok := AsErrorWithCode(err)
	if !ok {
		e = ErrInternalServer
	}
	body := gin.H{"message": e.TranslateByContext(c)}
	if e.Detail != "" {
		body["error"] = e.Detail
	}
	c.AbortWithStatusJSON(int(e.GetCode()), body)
}

// RespondWithSuccess writes {message, ...payload}. A map payload is merged
// into the top level; anything else is placed under "data".
func RespondWithSuccess(c *gin.Context, statusCode int, msgID string, data map[string]any, payload any) {
	response := gin.H{"message": TranslateMessage(c, msgID, data)}

	switch p := payload.(type) {
	case nil:
	case gin.H:
		for k, v := range p {
			response[k] = v
		}
	case map[string]any:
		for k, v := range p {
			response[k] = v
		}
	default:
		response["data"] = payload
	}
	c.JSON(statusCode, response)
}

// RespondOK sends a success HTTP response with status code 200
func RespondOK(c *gin.Context, msgID string, payload any) {
	RespondWithSuccess(c, http.StatusOK, msgID, nil, payload)
}

// RespondCreated sends a success HTTP response with status code 201
func RespondCreated(c *gin.Context, msgID string, payload any) {
	RespondWithSuccess(c, http.StatusCreated, msgID, nil, payload)
}
