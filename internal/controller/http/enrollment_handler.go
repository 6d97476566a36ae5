package http

import (
	"errors"
	"net/http"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentUseCase usecase.EnrollmentUseCase
}

func NewEnrollmentHandler(enrollmentUseCase usecase.EnrollmentUseCase) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentUseCase: enrollmentUseCase,
	}
}

type UpdateProgressRequest struct {
	Progress int `json:"progress"`
}

type CompleteLessonRequest struct {
	LessonID string `json:"lessonId" binding:"required"`
}

// GetMyEnrollments godoc
// @Summary      List own active enrollments
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /enrollments [get]
func (h *EnrollmentHandler) GetMyEnrollments(c *gin.Context) {
	enrollments := h.enrollmentUseCase.GetUserEnrollments(c.Request.Context(), c.GetString("user_id"))
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments, "count": len(enrollments)})
}

// GetEnrollmentStatus godoc
// @Summary      Check enrollment in a course
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Success      200  {object}  map[string]bool
// @Router       /enrollments/{courseId}/status [get]
func (h *EnrollmentHandler) GetEnrollmentStatus(c *gin.Context) {
	enrolled := h.enrollmentUseCase.IsEnrolled(c.Request.Context(), c.GetString("user_id"), c.Param("courseId"))
	c.JSON(http.StatusOK, gin.H{"enrolled": enrolled})
}

// UpdateProgress godoc
// @Summary      Update enrollment progress
// @Description  Progress is clamped to [0,100]; reaching 100 completes the enrollment
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment ID"
// @Param        request body UpdateProgressRequest true "New progress"
// @Success      200  {object}  entity.Enrollment
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /enrollments/{id}/progress [put]
func (h *EnrollmentHandler) UpdateProgress(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := h.getOwned(c)
	if err != nil {
		return
	}

	updated, err := h.enrollmentUseCase.UpdateProgress(c.Request.Context(), enrollment.ID, req.Progress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CompleteLesson godoc
// @Summary      Mark a lesson complete
// @Description  Completing the same lesson twice is a no-op
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment ID"
// @Param        request body CompleteLessonRequest true "Lesson to mark"
// @Success      200  {object}  entity.Enrollment
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /enrollments/{id}/lessons [post]
func (h *EnrollmentHandler) CompleteLesson(c *gin.Context) {
	var req CompleteLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	enrollment, err := h.getOwned(c)
	if err != nil {
		return
	}

	updated, err := h.enrollmentUseCase.CompleteLesson(c.Request.Context(), enrollment.ID, req.LessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelEnrollment godoc
// @Summary      Cancel an enrollment
// @Description  Cancellation is terminal; the record stays for history and stats
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Enrollment ID"
// @Success      200  {object}  entity.Enrollment
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /enrollments/{id} [delete]
func (h *EnrollmentHandler) CancelEnrollment(c *gin.Context) {
	enrollment, err := h.getOwned(c)
	if err != nil {
		return
	}

	cancelled, err := h.enrollmentUseCase.CancelEnrollment(c.Request.Context(), enrollment.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// GetUserStats godoc
// @Summary      Get own learning stats
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.UserStats
// @Router       /enrollments/stats [get]
func (h *EnrollmentHandler) GetUserStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.enrollmentUseCase.GetUserStats(c.Request.Context(), c.GetString("user_id")))
}

// GetAllEnrollments godoc
// @Summary      List every enrollment
// @Description  Admin only
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /admin/enrollments [get]
func (h *EnrollmentHandler) GetAllEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentUseCase.GetAllEnrollments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enrollments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollments": enrollments, "count": len(enrollments)})
}

// GetCourseStats godoc
// @Summary      Get enrollment stats for a course
// @Description  Admin only
// @Tags         enrollments
// @Produce      json
// @Security     BearerAuth
// @Param        courseId path string true "Course ID"
// @Success      200  {object}  entity.CourseStats
// @Router       /admin/courses/{courseId}/stats [get]
func (h *EnrollmentHandler) GetCourseStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.enrollmentUseCase.GetCourseStats(c.Request.Context(), c.Param("courseId")))
}

// getOwned loads the enrollment from the path and rejects callers that do
// not own it. Admins may act on any enrollment.
func (h *EnrollmentHandler) getOwned(c *gin.Context) (*entity.Enrollment, error) {
	ctx := c.Request.Context()
	all, err := h.enrollmentUseCase.GetAllEnrollments(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enrollments"})
		return nil, err
	}

	id := c.Param("id")
	for _, enrollment := range all {
		if enrollment.ID != id {
			continue
		}
		if enrollment.UserID != c.GetString("user_id") && c.GetString("user_role") != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "You can only manage your own enrollments"})
			return nil, errors.New("forbidden")
		}
		return enrollment, nil
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Enrollment not found"})
	return nil, entity.ErrEnrollmentNotFound
}
