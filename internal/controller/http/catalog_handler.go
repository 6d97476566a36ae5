package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"gospel-keys/internal/entity"
	"gospel-keys/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type CreateCourseRequest struct {
	Title        string `json:"title" binding:"required"`
	Author       string `json:"author" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Price        string `json:"price" binding:"required"`
	RegularPrice string `json:"regular_price"`
	Lesson       string `json:"lesson"`
	Review       string `json:"review"`
	Image        string `json:"image"`
	Type         string `json:"type"`
}

// GetCourses godoc
// @Summary      List courses
// @Description  Bundled courses first, then locally added ones. Supports search and category filters.
// @Tags         courses
// @Produce      json
// @Param        search    query string false "Match against title and description"
// @Param        category  query string false "Exact category, case-insensitive"
// @Success      200  {object}  map[string]interface{}
// @Router       /courses [get]
func (h *CatalogHandler) GetCourses(c *gin.Context) {
	ctx := c.Request.Context()

	var courses []*entity.Course
	switch {
	case c.Query("search") != "":
		courses = h.catalogUseCase.SearchCourses(ctx, c.Query("search"))
	case c.Query("category") != "":
		courses = h.catalogUseCase.GetCoursesByCategory(ctx, c.Query("category"))
	default:
		courses = h.catalogUseCase.GetAllCourses(ctx)
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses, "count": len(courses)})
}

// GetCourse godoc
// @Summary      Get a course by ID
// @Tags         courses
// @Produce      json
// @Param        id path string true "Course ID"
// @Success      200  {object}  entity.Course
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := h.catalogUseCase.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary      Create a course
// @Description  Admin only
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCourseRequest true "Course data"
// @Success      201  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/courses [post]
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.catalogUseCase.CreateCourse(c.Request.Context(), entity.Course{
		Title:        req.Title,
		Author:       req.Author,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		RegularPrice: req.RegularPrice,
		Lesson:       req.Lesson,
		Review:       req.Review,
		Image:        req.Image,
		Type:         req.Type,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

// UpdateCourse godoc
// @Summary      Update a locally added course
// @Description  Admin only. Bundled courses are immutable and answer 404.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        request body entity.CourseUpdate true "Fields to update"
// @Success      200  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [put]
func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	var updates entity.CourseUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course, err := h.catalogUseCase.UpdateCourse(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, entity.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary      Delete a locally added course
// @Description  Admin only. Bundled courses are not deletable and answer 404.
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/courses/{id} [delete]
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	if err := h.catalogUseCase.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, entity.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted"})
}

// UploadCourseImage godoc
// @Summary      Upload a course image
// @Description  Admin only
// @Tags         courses
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Course ID"
// @Param        image formData file true "Course image file"
// @Success      200  {object}  entity.Course
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /admin/courses/{id}/image [post]
func (h *CatalogHandler) UploadCourseImage(c *gin.Context) {
	courseID := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format. Only jpg, jpeg, png, webp are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("courses/%s/%s%s", courseID, uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	course, err := h.catalogUseCase.UploadCourseImage(c.Request.Context(), courseID, src, fileKey, contentType)
	if err != nil {
		if errors.Is(err, entity.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}
