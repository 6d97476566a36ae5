package usecase

import (
	"context"
	"time"

	"gospel-keys/internal/entity"
	"gospel-keys/pkg/logger"
)

type CheckoutUseCase interface {
	QuoteCart(ctx context.Context, coupon string) (*entity.Receipt, error)
	QuoteCourse(ctx context.Context, courseID, coupon string) (*entity.Receipt, error)
	CheckoutCart(ctx context.Context, userID, coupon string) (*entity.Receipt, error)
	CheckoutCourse(ctx context.Context, userID, courseID, coupon string) (*entity.Receipt, error)
}

type checkoutUseCase struct {
	cartUseCase       CartUseCase
	catalogUseCase    CatalogUseCase
	enrollmentUseCase EnrollmentUseCase
	processingDelay   time.Duration
	logger            *logger.Logger
}

func NewCheckoutUseCase(
	cart CartUseCase,
	catalog CatalogUseCase,
	enrollment EnrollmentUseCase,
	processingDelay time.Duration,
	log *logger.Logger,
) CheckoutUseCase {
	return &checkoutUseCase{
		cartUseCase:       cart,
		catalogUseCase:    catalog,
		enrollmentUseCase: enrollment,
		processingDelay:   processingDelay,
		logger:            log,
	}
}

func buildReceipt(items []entity.ReceiptItem, coupon string) *entity.Receipt {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price
	}
	discount := subtotal * couponPercent(coupon) / 100
	return &entity.Receipt{
		Items:    items,
		Coupon:   coupon,
		Subtotal: round2(subtotal),
		Discount: round2(discount),
		Total:    round2(subtotal - discount),
	}
}

func (uc *checkoutUseCase) QuoteCart(ctx context.Context, coupon string) (*entity.Receipt, error) {
	cart := uc.cartUseCase.GetCart(ctx)
	items := make([]entity.ReceiptItem, len(cart))
	for i, item := range cart {
		items[i] = entity.ReceiptItem{
			CourseID: item.ID,
			Title:    item.Title,
			Price:    parseDisplayPrice(item.Price),
		}
	}
	return buildReceipt(items, coupon), nil
}

func (uc *checkoutUseCase) QuoteCourse(ctx context.Context, courseID, coupon string) (*entity.Receipt, error) {
	course, err := uc.catalogUseCase.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	items := []entity.ReceiptItem{{
		CourseID: course.ID,
		Title:    course.Title,
		Price:    parseDisplayPrice(course.Price),
	}}
	return buildReceipt(items, coupon), nil
}

// CheckoutCart enrolls the user in every cart course and then clears the
// cart. There is no payment gateway; the processing delay simulates one.
// Enrollment failures abort before the cart is cleared, so a duplicate
// enrollment leaves the cart intact.
func (uc *checkoutUseCase) CheckoutCart(ctx context.Context, userID, coupon string) (*entity.Receipt, error) {
	receipt, err := uc.QuoteCart(ctx, coupon)
	if err != nil {
		return nil, err
	}

	uc.simulateProcessing(ctx)

	for _, item := range receipt.Items {
		course, err := uc.catalogUseCase.GetCourseByID(ctx, item.CourseID)
		if err != nil {
			return nil, err
		}
		enrollment, err := uc.enrollmentUseCase.Enroll(ctx, userID, course)
		if err != nil {
			return nil, err
		}
		receipt.Enrollments = append(receipt.Enrollments, enrollment)
	}

	if err := uc.cartUseCase.ClearCart(ctx); err != nil {
		uc.logger.Error("Failed to clear cart after checkout: %v", err)
	}
	return receipt, nil
}

func (uc *checkoutUseCase) CheckoutCourse(ctx context.Context, userID, courseID, coupon string) (*entity.Receipt, error) {
	receipt, err := uc.QuoteCourse(ctx, courseID, coupon)
	if err != nil {
		return nil, err
	}

	uc.simulateProcessing(ctx)

	course, err := uc.catalogUseCase.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	enrollment, err := uc.enrollmentUseCase.Enroll(ctx, userID, course)
	if err != nil {
		return nil, err
	}
	receipt.Enrollments = append(receipt.Enrollments, enrollment)

	// A directly purchased course also leaves the cart if it was there.
	if _, err := uc.cartUseCase.RemoveFromCart(ctx, courseID); err != nil {
		uc.logger.Error("Failed to remove checked-out course from cart: %v", err)
	}
	return receipt, nil
}

func (uc *checkoutUseCase) simulateProcessing(ctx context.Context) {
	if uc.processingDelay <= 0 {
		return
	}
	select {
	case <-time.After(uc.processingDelay):
	case <-ctx.Done():
	}
}
