package controllers

import (
	"errors"
	"regexp"

	"studentportal/backend/config"
	"studentportal/backend/models"
	"studentportal/backend/report"
	"studentportal/backend/sheets"
	"studentportal/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct {
	Src sheets.Source
	Cfg *config.Config
}

func NewStudentController(src sheets.Source, cfg *config.Config) *StudentController {
	return &StudentController{Src: src, Cfg: cfg}
}

// The core never assumes a key length; the boundary only checks that the
// admission number is numeric.
var admissionNoPattern = regexp.MustCompile(`^[0-9]+$`)

// GetStudentProfile godoc
// @Summary Get student profile
// @Description Returns the full academic profile for one student: info, subjects, tests, assignments, corrections and attendance
// @Tags students
// @Accept json
// @Produce json
// @Param admissionNo path string true "Student admission number"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /student/{admissionNo} [get]
func (sc *StudentController) GetStudentProfile(c *fiber.Ctx) error {
	key := c.Params("admissionNo")
	if !admissionNoPattern.MatchString(key) {
		return utils.BadRequest(c, "Invalid admission number")
	}

	tables, err := sc.Src.FetchRanges(c.Context(), report.SheetRanges())
	if err != nil {
		return utils.BadGateway(c, "Failed to fetch sheet data")
	}

	profile, err := report.BuildProfile(tables, key)
	switch {
	case errors.Is(err, models.ErrStudentNotFound):
		return utils.NotFound(c, "Student not found")
	case errors.Is(err, models.ErrKeyColumnMissing):
		return utils.UnprocessableEntity(c, "Students sheet has no roll/admission/id column")
	case err != nil:
		return utils.InternalServerError(c, "Failed to build student profile")
	}

	return utils.Success(c, fiber.StatusOK, profile)
}

// Health godoc
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (sc *StudentController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
