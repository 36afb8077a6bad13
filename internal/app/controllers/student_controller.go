package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/app/services"
	"github.com/yigit/studentrecords/internal/middleware"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student "Students ordered by id"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Router /v1/students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// CreateStudent adds a student
// @Summary Create a student
// @Description New students are always active
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 200 {object} dto.StatusResponse "Student Record added successfully."
// @Failure 400 {object} dto.StatusResponse "Invalid request data"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Router /v1/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.studentService.CreateStudent(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStatusResponse(true, "Student Record added successfully."))
}

// GetStudentByID retrieves a student
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Student "Student"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /v1/students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent partially updates a student
// @Summary Update a student
// @Description Only the fields present in the body are written
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse "Student Record updated successfully"
// @Failure 400 {object} dto.StatusResponse "Invalid request data"
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /v1/students/{id} [put]
// @Router /v1/students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	if err := c.studentService.EnsureStudentExists(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := bindOptionalJSON(ctx, &req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(true, "Student Record updated successfully"))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 202 {object} dto.MessageResponse "Student recorded delected."
// @Failure 401 {object} dto.StatusResponse "Missing or invalid token"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /v1/students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Student recorded delected."})
}
