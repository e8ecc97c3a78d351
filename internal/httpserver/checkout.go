package httpserver

import (
	"errors"
	"io"
	"net/http"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	checkoutsvc "github.com/Bart563/KBZ-Computers/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func checkoutSessionHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Session(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func checkoutAddressHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var addr domain.ShippingAddress
		if err := c.ShouldBindJSON(&addr); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		sess, err := svc.SubmitAddress(c.Request.Context(), currentUser(c), addr)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func checkoutPaymentHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info domain.PaymentInfo
		if err := c.ShouldBindJSON(&info); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		sess, err := svc.SubmitPayment(c.Request.Context(), currentUser(c), info)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func checkoutBackHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := svc.Back(c.Request.Context(), currentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

func checkoutPlaceHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The body (coupon, notes) is optional on placement.
		var in checkoutsvc.PlaceInput
		if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
			badRequest(c, "invalid request body")
			return
		}
		order, err := svc.Place(c.Request.Context(), currentUser(c), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
