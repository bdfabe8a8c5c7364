package service

import (
	"errors"

	"payboard/internal/utils/apierror"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// mapStoreError is the single translation point from repository failures
// to API errors. Anything that is not a missing row is logged and hidden
// behind a 500.
func mapStoreError(op string, err error) apierror.ErrorResponse {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFoundError
	}

	log.Errorf("%s: %v", op, err)
	return apierror.InternalServerError
}
