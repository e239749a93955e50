package handler

import (
	"errors"
	"net/http"

	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/apperror"
)

// bindError maps a request-binding failure to an AppError. A body truncated
// by the size limit middleware answers 413; everything else is a 400.
func bindError(err error) *apperror.AppError {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return apperror.ErrPayloadTooLarge()
	}
	return apperror.Validation(err.Error())
}
