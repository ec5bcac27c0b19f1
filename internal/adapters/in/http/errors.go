package http

import (
	"errors"
	"net/http"

	"github.com/fixmate/repair-marketplace-api/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// respondError переводит доменные ошибки в HTTP-статусы.
// Нарушения предусловий - 409, их можно повторить позже.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrActorMismatch):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrOngoingRepair),
		errors.Is(err, domain.ErrPendingAppointments):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrTerminalState),
		errors.Is(err, domain.ErrReasonRequired),
		errors.Is(err, domain.ErrArriveNotApplicable),
		errors.Is(err, domain.ErrInvalidIssueText),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrUnknownIssue),
		errors.Is(err, domain.ErrUnknownStatus):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
