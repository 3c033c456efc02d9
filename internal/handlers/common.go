package handlers

import (
	"net/http"
	"strings"

	"inspekta/internal/utils"
	"inspekta/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+param)
		return primitive.NilObjectID, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	objectID, ok := userID.(primitive.ObjectID)
	if !ok {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}
	return objectID, true
}

// respondServiceError maps service errors to HTTP responses. Validation
// failures carry the full field detail map; everything else degrades to the
// caller's error code.
func respondServiceError(c *gin.Context, err error, code string) {
	if validationErrors, ok := err.(validators.ValidationErrors); ok {
		utils.ValidationErrorResponse(c, validationErrors.Details())
		return
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "not found"):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", msg)
	case strings.Contains(msg, utils.ErrInvalidStatusChange):
		utils.ConflictResponse(c, msg)
	case strings.Contains(msg, utils.ErrInvalidCredentials) || strings.Contains(msg, utils.ErrInvalidToken):
		utils.UnauthorizedResponse(c)
	case strings.Contains(msg, utils.ErrForbidden):
		utils.ForbiddenResponse(c)
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, code, msg)
	}
}
