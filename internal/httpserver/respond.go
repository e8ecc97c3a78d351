package httpserver

import (
	"errors"
	"net/http"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	customerrepo "github.com/Bart563/KBZ-Computers/internal/repository/customer"
	checkoutsvc "github.com/Bart563/KBZ-Computers/internal/service/checkout"
	customersvc "github.com/Bart563/KBZ-Computers/internal/service/customer"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses in
// one place. Validation and capacity failures are client errors;
// network failures are retryable 503s.
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var perr *domain.PaymentError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.As(err, &perr):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment failed", "reason": perr.Reason})
	case errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, customersvc.ErrInvalidToken),
		errors.Is(err, customersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrCompareFull),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, checkoutsvc.ErrWrongStep),
		errors.Is(err, checkoutsvc.ErrEmptyCart),
		errors.Is(err, customerrepo.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNetwork):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "remote store unavailable", "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
