package http

import (
	"errors"
	"net/http"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

type QuoteRequest struct {
	CourseID string `json:"courseId"`
	Coupon   string `json:"coupon"`
}

type CheckoutRequest struct {
	CourseID string `json:"courseId"`
	Coupon   string `json:"coupon"`
}

// Quote godoc
// @Summary      Price a purchase without committing it
// @Description  Quotes the cart, or a single course when courseId is set. Unknown coupons discount nothing.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body QuoteRequest true "What to price"
// @Success      200  {object}  entity.Receipt
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /checkout/quote [post]
func (h *CheckoutHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var receipt *entity.Receipt
	var err error
	if req.CourseID != "" {
		receipt, err = h.checkoutUseCase.QuoteCourse(ctx, req.CourseID, req.Coupon)
	} else {
		receipt, err = h.checkoutUseCase.QuoteCart(ctx, req.Coupon)
	}
	if err != nil {
		if errors.Is(err, entity.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Checkout godoc
// @Summary      Complete a purchase
// @Description  Checks out the cart, or a single course when courseId is set. Enrolls the user and clears what was bought.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CheckoutRequest true "What to buy"
// @Success      200  {object}  entity.Receipt
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	var receipt *entity.Receipt
	var err error
	if req.CourseID != "" {
		receipt, err = h.checkoutUseCase.CheckoutCourse(ctx, userID, req.CourseID, req.Coupon)
	} else {
		receipt, err = h.checkoutUseCase.CheckoutCart(ctx, userID, req.Coupon)
	}
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		case errors.Is(err, entity.ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, receipt)
}
