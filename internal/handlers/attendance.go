// Package handlers implements the HTTP request handlers for the HRMS
// onboarding service. This file covers the employee attendance surface:
// check-in/check-out, history, and correction requests.
package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/venkatesh481825/HRMS/internal/security"
	"github.com/venkatesh481825/HRMS/internal/services"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04"
	dateTimeLayout = "2006-01-02T15:04"
)

// AttendanceHandler handles the authenticated employee attendance requests.
type AttendanceHandler struct {
	attendance *services.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendance *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// CheckIn records the day's check-in. Checking in twice returns the existing
// record unchanged.
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("user_id").(int)

	record, err := h.attendance.CheckIn(c.Context(), employeeID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"attendance": record})
}

// CheckOut records the day's check-out and the computed working hours.
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("user_id").(int)

	record, err := h.attendance.CheckOut(c.Context(), employeeID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"attendance": record})
}

// MyAttendance returns the caller's attendance history, newest date first.
func (h *AttendanceHandler) MyAttendance(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("user_id").(int)

	records, err := h.attendance.MyAttendance(c.Context(), employeeID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"records": records})
}

// ApplyPermission submits a partial-day absence request. The form carries a
// date plus wall-clock from/to times, combined here into timestamps on that
// date.
func (h *AttendanceHandler) ApplyPermission(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("user_id").(int)

	date, err := time.Parse(dateLayout, c.FormValue("date"))
	if err != nil {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	from, err := parseClockOn(date, c.FormValue("from_time"))
	if err != nil {
		return badRequest(c, "from_time must be HH:MM")
	}

	to, err := parseClockOn(date, c.FormValue("to_time"))
	if err != nil {
		return badRequest(c, "to_time must be HH:MM")
	}

	reason := c.FormValue("reason")
	if err := security.ValidateReason(reason); err != nil {
		return badRequest(c, err.Error())
	}

	permission, err := h.attendance.ApplyPermission(c.Context(), employeeID, date, from, to, reason)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"permission": permission})
}

// ApplyRegularization submits a correction request against one of the
// caller's own attendance rows.
func (h *AttendanceHandler) ApplyRegularization(c *fiber.Ctx) error {
	employeeID, _ := c.Locals("user_id").(int)

	attendanceID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid attendance id")
	}

	checkIn, err := time.Parse(dateTimeLayout, c.FormValue("check_in"))
	if err != nil {
		return badRequest(c, "check_in must be YYYY-MM-DDTHH:MM")
	}

	checkOut, err := time.Parse(dateTimeLayout, c.FormValue("check_out"))
	if err != nil {
		return badRequest(c, "check_out must be YYYY-MM-DDTHH:MM")
	}

	reason := c.FormValue("reason")
	if err := security.ValidateReason(reason); err != nil {
		return badRequest(c, err.Error())
	}

	reg, err := h.attendance.ApplyRegularization(c.Context(), employeeID, attendanceID, &checkIn, &checkOut, reason)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"regularization": reg})
}

func parseClockOn(date time.Time, value string) (time.Time, error) {
	clock, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}
