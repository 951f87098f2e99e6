// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"daytrip/internal/modules/member"
	"daytrip/internal/modules/place"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeMemberError(c *gin.Context, err error) {
	switch err {
	case member.ErrBadRequest:
		writeError(c, http.StatusBadRequest, err.Error())
	case member.ErrDuplicateID:
		writeError(c, http.StatusConflict, err.Error())
	case member.ErrUnauthorized:
		writeError(c, http.StatusUnauthorized, err.Error())
	case member.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writePlaceError(c *gin.Context, err error) {
	switch err {
	case place.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
