package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/openrota/rota-api/internal/middleware"
	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

var validate = validator.New()

// bindAndValidate decodes the JSON body and runs struct validation in one
// step; handlers surface the result as a validation error.
func bindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload")
	}
	if err := validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "validation failed")
	}
	return nil
}

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation,
			fmt.Sprintf("date must use the %s format", models.DateFormat))
	}
	return date, nil
}
