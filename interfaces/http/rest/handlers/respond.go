package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ecovista-backend/pkg/common"
	apperrors "ecovista-backend/pkg/errors"
)

// respondDomainError maps gateway errors onto HTTP statuses: validation 400,
// not found 404, conflict 409, everything else 500. Server-side failures are
// logged with full context; the response body never carries more than the
// error message.
func respondDomainError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error("Request failed", zap.String("operation", op), zap.Error(err))
		}
		common.RespondError(w, appErr.HTTPStatus, appErr.Message)
		return
	}

	logger.Error("Request failed", zap.String("operation", op), zap.Error(err))
	common.RespondError(w, http.StatusInternalServerError, err.Error())
}
