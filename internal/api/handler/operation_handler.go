package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ligonine/hospital-system/internal/core/ports"
)

type OperationHandler struct {
	service ports.HospitalService
}

func NewOperationHandler(service ports.HospitalService) *OperationHandler {
	return &OperationHandler{service: service}
}

// List handles GET .../doctors/:doctorId/operations.
//
// @Summary      List a doctor's operations
// @Tags         operations
// @Produce      json
// @Param        departmentId  path      string  true  "Department ID"
// @Param        doctorId      path      string  true  "Doctor ID"
// @Success      200           {array}   domain.Operation
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId}/operations [get]
func (h *OperationHandler) List(c echo.Context) error {
	ops, err := h.service.ListOperations(c.Request().Context(), c.Param("departmentId"), c.Param("doctorId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ops)
}

// Get handles GET .../operations/:operationId.
//
// @Summary      Get an operation
// @Tags         operations
// @Produce      json
// @Param        departmentId  path      string  true  "Department ID"
// @Param        doctorId      path      string  true  "Doctor ID"
// @Param        operationId   path      string  true  "Operation ID"
// @Success      200           {object}  domain.Operation
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId}/operations/{operationId} [get]
func (h *OperationHandler) Get(c echo.Context) error {
	op, err := h.service.GetOperation(c.Request().Context(), c.Param("departmentId"), c.Param("doctorId"), c.Param("operationId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, op)
}

// Create handles POST .../operations. Admin or Doctor.
//
// @Summary      Create an operation
// @Tags         operations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        departmentId  path      string            true  "Department ID"
// @Param        doctorId      path      string            true  "Doctor ID"
// @Param        body          body      operationRequest  true  "Operation"
// @Success      201           {object}  domain.Operation
// @Failure      403           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId}/operations [post]
func (h *OperationHandler) Create(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req operationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	op, err := h.service.CreateOperation(c.Request().Context(), principal, c.Param("departmentId"), c.Param("doctorId"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, op)
}

// Update handles PUT .../operations/:operationId.
//
// @Summary      Update an operation
// @Tags         operations
// @Accept       json
// @Security     BearerAuth
// @Param        departmentId  path  string            true  "Department ID"
// @Param        doctorId      path  string            true  "Doctor ID"
// @Param        operationId   path  string            true  "Operation ID"
// @Param        body          body  operationRequest  true  "Operation"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId}/operations/{operationId} [put]
func (h *OperationHandler) Update(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	var req operationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.UpdateOperation(c.Request().Context(), principal,
		c.Param("departmentId"), c.Param("doctorId"), c.Param("operationId"), req.toInput())
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE .../operations/:operationId.
//
// @Summary      Delete an operation
// @Tags         operations
// @Security     BearerAuth
// @Param        departmentId  path  string  true  "Department ID"
// @Param        doctorId      path  string  true  "Doctor ID"
// @Param        operationId   path  string  true  "Operation ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/departments/{departmentId}/doctors/{doctorId}/operations/{operationId} [delete]
func (h *OperationHandler) Delete(c echo.Context) error {
	principal, err := caller(c)
	if err != nil {
		return err
	}
	err = h.service.DeleteOperation(c.Request().Context(), principal,
		c.Param("departmentId"), c.Param("doctorId"), c.Param("operationId"))
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
