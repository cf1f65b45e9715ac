package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for departments.
type DepartmentHandler struct {
	service ports.HospitalService
}

func NewDepartmentHandler(service ports.HospitalService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List handles GET /api/departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {array}   domain.Department
// @Router       /api/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.service.ListDepartments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Get handles GET /api/departments/:departmentId.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Param        departmentId  path      string  true  "Department ID"
// @Success      200           {object}  domain.Department
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	department, err := h.service.GetDepartment(c.Request().Context(), c.Param("departmentId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Create handles POST /api/departments. Admin only.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department"
// @Success      201   {object}  domain.Department
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req departmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	department, err := h.service.CreateDepartment(c.Request().Context(), principal, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// Update handles PUT /api/departments/:departmentId. Admin only.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Security     BearerAuth
// @Param        departmentId  path  string             true  "Department ID"
// @Param        body          body  departmentRequest  true  "Department"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req departmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.UpdateDepartment(c.Request().Context(), principal, c.Param("departmentId"), req.toInput()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/departments/:departmentId. Admin only.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        departmentId  path  string  true  "Department ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDepartment(c.Request().Context(), principal, c.Param("departmentId")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
