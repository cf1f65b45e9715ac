package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

// HospitalService serves the department → doctor → operation tree and
// applies the ownership policy to every mutation.
type HospitalService struct {
	departments ports.EntityRepository[domain.Department]
	doctors     ports.EntityRepository[domain.Doctor]
	operations  ports.EntityRepository[domain.Operation]
	logger      zerolog.Logger
}

func NewHospitalService(
	departments ports.EntityRepository[domain.Department],
	doctors ports.EntityRepository[domain.Doctor],
	operations ports.EntityRepository[domain.Operation],
	logger zerolog.Logger,
) *HospitalService {
	return &HospitalService{
		departments: departments,
		doctors:     doctors,
		operations:  operations,
		logger:      logger,
	}
}

var _ ports.HospitalService = (*HospitalService)(nil)

// --- Departments ---

func (s *HospitalService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx, "")
}

func (s *HospitalService) GetDepartment(ctx context.Context, id string) (*domain.Department, error) {
	d, err := s.departments.Get(ctx, "", id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDepartmentNotFound
	}
	return d, nil
}

func (s *HospitalService) CreateDepartment(ctx context.Context, caller *domain.Principal, in ports.DepartmentInput) (*domain.Department, error) {
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	d := &domain.Department{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		UserID:      caller.UserID,
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info().Str("department_id", d.ID).Str("user_id", caller.UserID).Msg("department created")
	return d, nil
}

func (s *HospitalService) UpdateDepartment(ctx context.Context, caller *domain.Principal, id string, in ports.DepartmentInput) error {
	if err := requireName(in.Name); err != nil {
		return err
	}
	d, err := s.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(d.UserID) {
		return &domain.OwnershipError{Resource: "department"}
	}
	d.Name = in.Name
	d.Description = in.Description
	return s.departments.Update(ctx, "", id, d)
}

func (s *HospitalService) DeleteDepartment(ctx context.Context, caller *domain.Principal, id string) error {
	d, err := s.GetDepartment(ctx, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(d.UserID) {
		return &domain.OwnershipError{Resource: "department"}
	}
	return s.departments.Delete(ctx, "", id)
}

// --- Doctors ---

func (s *HospitalService) ListDoctors(ctx context.Context, departmentID string) ([]domain.Doctor, error) {
	if _, err := s.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.doctors.List(ctx, departmentID)
}

func (s *HospitalService) GetDoctor(ctx context.Context, departmentID, id string) (*domain.Doctor, error) {
	if _, err := s.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.findDoctor(ctx, departmentID, id)
}

func (s *HospitalService) CreateDoctor(ctx context.Context, caller *domain.Principal, departmentID string, in ports.DoctorInput) (*domain.Doctor, error) {
	if err := validateDoctor(in); err != nil {
		return nil, err
	}
	if _, err := s.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	d := &domain.Doctor{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Age:          in.Age,
		BloodType:    in.BloodType,
		DepartmentID: departmentID,
		UserID:       caller.UserID,
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	s.logger.Info().Str("doctor_id", d.ID).Str("department_id", departmentID).Str("user_id", caller.UserID).Msg("doctor created")
	return d, nil
}

func (s *HospitalService) UpdateDoctor(ctx context.Context, caller *domain.Principal, departmentID, id string, in ports.DoctorInput) error {
	if err := validateDoctor(in); err != nil {
		return err
	}
	d, err := s.GetDoctor(ctx, departmentID, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(d.UserID) {
		return &domain.OwnershipError{Resource: "doctor record"}
	}
	d.Name = in.Name
	d.Age = in.Age
	d.BloodType = in.BloodType
	return s.doctors.Update(ctx, departmentID, id, d)
}

func (s *HospitalService) DeleteDoctor(ctx context.Context, caller *domain.Principal, departmentID, id string) error {
	d, err := s.GetDoctor(ctx, departmentID, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(d.UserID) {
		return &domain.OwnershipError{Resource: "doctor record"}
	}
	return s.doctors.Delete(ctx, departmentID, id)
}

func (s *HospitalService) findDoctor(ctx context.Context, departmentID, id string) (*domain.Doctor, error) {
	d, err := s.doctors.Get(ctx, departmentID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDoctorNotFound
	}
	return d, nil
}

// --- Operations ---

func (s *HospitalService) ListOperations(ctx context.Context, departmentID, doctorID string) ([]domain.Operation, error) {
	if _, err := s.findDoctor(ctx, departmentID, doctorID); err != nil {
		return nil, err
	}
	return s.operations.List(ctx, doctorID)
}

func (s *HospitalService) GetOperation(ctx context.Context, departmentID, doctorID, id string) (*domain.Operation, error) {
	if _, err := s.findDoctor(ctx, departmentID, doctorID); err != nil {
		return nil, err
	}
	op, err := s.operations.Get(ctx, doctorID, id)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrOperationNotFound
	}
	return op, nil
}

func (s *HospitalService) CreateOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID string, in ports.OperationInput) (*domain.Operation, error) {
	if err := requireName(in.Name); err != nil {
		return nil, err
	}
	if _, err := s.findDoctor(ctx, departmentID, doctorID); err != nil {
		return nil, err
	}
	op := &domain.Operation{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		DoctorID:    doctorID,
		UserID:      caller.UserID,
	}
	if err := s.operations.Create(ctx, op); err != nil {
		return nil, err
	}
	s.logger.Info().Str("operation_id", op.ID).Str("doctor_id", doctorID).Str("user_id", caller.UserID).Msg("operation created")
	return op, nil
}

func (s *HospitalService) UpdateOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID, id string, in ports.OperationInput) error {
	if err := requireName(in.Name); err != nil {
		return err
	}
	op, err := s.GetOperation(ctx, departmentID, doctorID, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(op.UserID) {
		return &domain.OwnershipError{Resource: "operation"}
	}
	op.Name = in.Name
	op.Description = in.Description
	return s.operations.Update(ctx, doctorID, id, op)
}

func (s *HospitalService) DeleteOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID, id string) error {
	op, err := s.GetOperation(ctx, departmentID, doctorID, id)
	if err != nil {
		return err
	}
	if !caller.CanModify(op.UserID) {
		return &domain.OwnershipError{Resource: "operation"}
	}
	return s.operations.Delete(ctx, doctorID, id)
}

func requireName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Reason: "name is required"}
	}
	return nil
}

func validateDoctor(in ports.DoctorInput) error {
	if err := requireName(in.Name); err != nil {
		return err
	}
	if in.Age < 0 {
		return &domain.ValidationError{Reason: "age must not be negative"}
	}
	if !domain.IsKnownBloodType(in.BloodType) {
		return &domain.ValidationError{Reason: "unknown blood type " + in.BloodType}
	}
	return nil
}
