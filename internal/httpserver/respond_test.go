package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	checkoutsvc "github.com/Bart563/KBZ-Computers/internal/service/checkout"
	customersvc "github.com/Bart563/KBZ-Computers/internal/service/customer"
	"github.com/gin-gonic/gin"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &domain.ValidationError{Fields: map[string]string{"email": "required"}}, http.StatusBadRequest},
		{"payment declined", &domain.PaymentError{Reason: "card declined"}, http.StatusPaymentRequired},
		{"unauthenticated", domain.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", customersvc.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"compare full", domain.ErrCompareFull, http.StatusConflict},
		{"out of stock", domain.ErrOutOfStock, http.StatusConflict},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusConflict},
		{"wrong step", checkoutsvc.ErrWrongStep, http.StatusConflict},
		{"empty cart", checkoutsvc.ErrEmptyCart, http.StatusConflict},
		{"network", domain.ErrNetwork, http.StatusServiceUnavailable},
		{"wrapped network", fmt.Errorf("find wishlist: %w", domain.ErrNetwork), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			respondError(c, tc.err)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}
