package http

import (
	"errors"
	"net/http"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUseCase    usecase.CartUseCase
	catalogUseCase usecase.CatalogUseCase
}

func NewCartHandler(cartUseCase usecase.CartUseCase, catalogUseCase usecase.CatalogUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase:    cartUseCase,
		catalogUseCase: catalogUseCase,
	}
}

type AddItemRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

// GetCart godoc
// @Summary      Get the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	items := h.cartUseCase.GetCart(ctx)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
		"total": h.cartUseCase.GetCartTotal(ctx),
	})
}

// AddToCart godoc
// @Summary      Add a course to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddItemRequest true "Course to add"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /cart [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	course, err := h.catalogUseCase.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	items, err := h.cartUseCase.AddToCart(ctx, course)
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyInCart) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items, "count": len(items)})
}

// RemoveFromCart godoc
// @Summary      Remove a course from the cart
// @Description  Removing an absent course is not an error
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /cart/{courseId} [delete]
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	items, err := h.cartUseCase.RemoveFromCart(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartUseCase.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetWishlist godoc
// @Summary      Get the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /wishlist [get]
func (h *CartHandler) GetWishlist(c *gin.Context) {
	items := h.cartUseCase.GetWishlist(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// AddToWishlist godoc
// @Summary      Add a course to the wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddItemRequest true "Course to add"
// @Success      201  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /wishlist [post]
func (h *CartHandler) AddToWishlist(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	course, err := h.catalogUseCase.GetCourseByID(ctx, req.CourseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	items, err := h.cartUseCase.AddToWishlist(ctx, course)
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyInWishlist) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items, "count": len(items)})
}

// RemoveFromWishlist godoc
// @Summary      Remove a course from the wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /wishlist/{courseId} [delete]
func (h *CartHandler) RemoveFromWishlist(c *gin.Context) {
	items, err := h.cartUseCase.RemoveFromWishlist(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// MoveToCart godoc
// @Summary      Move a wishlist entry into the cart
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /wishlist/{courseId}/move-to-cart [post]
func (h *CartHandler) MoveToCart(c *gin.Context) {
	if err := h.cartUseCase.MoveToCart(c.Request.Context(), c.Param("courseId")); err != nil {
		if errors.Is(err, entity.ErrNotInWishlist) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Moved to cart"})
}
