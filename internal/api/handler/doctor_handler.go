package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/core/ports"
)

// DoctorHandler handles doctors nested under a department. Mutations other
// than create are gated by ownership in the service.
type DoctorHandler struct {
	service ports.HospitalService
}

func NewDoctorHandler(service ports.HospitalService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// List handles GET /api/departments/:departmentId/doctors.
//
// @Summary      List doctors in a department
// @Tags         doctors
// @Produce      json
// @Param        departmentId  path      string  true  "Department ID"
// @Success      200           {array}   domain.Doctor
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context(), c.Param("departmentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Get handles GET /api/departments/:departmentId/doctors/:doctorId.
//
// @Summary      Get a doctor
// @Tags         doctors
// @Produce      json
// @Param        departmentId  path      string  true  "Department ID"
// @Param        doctorId      path      string  true  "Doctor ID"
// @Success      200           {object}  domain.Doctor
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	doctor, err := h.service.GetDoctor(c.Request().Context(), c.Param("departmentId"), c.Param("doctorId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// Create handles POST /api/departments/:departmentId/doctors. Admin or Doctor.
//
// @Summary      Create a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        departmentId  path      string         true  "Department ID"
// @Param        body          body      doctorRequest  true  "Doctor"
// @Success      201           {object}  domain.Doctor
// @Failure      403           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Failure      422           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req doctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doctor, err := h.service.CreateDoctor(c.Request().Context(), principal, c.Param("departmentId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doctor)
}

// Update handles PUT /api/departments/:departmentId/doctors/:doctorId.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Security     BearerAuth
// @Param        departmentId  path  string         true  "Department ID"
// @Param        doctorId      path  string         true  "Doctor ID"
// @Param        body          body  doctorRequest  true  "Doctor"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req doctorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.UpdateDoctor(c.Request().Context(), principal, c.Param("departmentId"), c.Param("doctorId"), req.toInput())
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/departments/:departmentId/doctors/:doctorId.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Security     BearerAuth
// @Param        departmentId  path  string  true  "Department ID"
// @Param        doctorId      path  string  true  "Doctor ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDoctor(c.Request().Context(), principal, c.Param("departmentId"), c.Param("doctorId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
