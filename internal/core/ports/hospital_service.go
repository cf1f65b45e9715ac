package ports

import (
	"context"

	"github.com/ligonine/hospital-system/internal/core/domain"
)

type DepartmentInput struct {
	Name        string
	Description string
}

type DoctorInput struct {
	Name      string
	Age       int
	BloodType string
}

type OperationInput struct {
	Name        string
	Description string
}

// HospitalService serves the department/doctor/operation tree. Mutations
// receive the caller so ownership can be enforced.
type HospitalService interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	GetDepartment(ctx context.Context, id string) (*domain.Department, error)
	CreateDepartment(ctx context.Context, caller *domain.Principal, in DepartmentInput) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, caller *domain.Principal, id string, in DepartmentInput) error
	DeleteDepartment(ctx context.Context, caller *domain.Principal, id string) error

	ListDoctors(ctx context.Context, departmentID string) ([]domain.Doctor, error)
	GetDoctor(ctx context.Context, departmentID, id string) (*domain.Doctor, error)
	CreateDoctor(ctx context.Context, caller *domain.Principal, departmentID string, in DoctorInput) (*domain.Doctor, error)
	UpdateDoctor(ctx context.Context, caller *domain.Principal, departmentID, id string, in DoctorInput) error
	DeleteDoctor(ctx context.Context, caller *domain.Principal, departmentID, id string) error

	ListOperations(ctx context.Context, departmentID, doctorID string) ([]domain.Operation, error)
	GetOperation(ctx context.Context, departmentID, doctorID, id string) (*domain.Operation, error)
	CreateOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID string, in OperationInput) (*domain.Operation, error)
	UpdateOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID, id string, in OperationInput) error
	DeleteOperation(ctx context.Context, caller *domain.Principal, departmentID, doctorID, id string) error
}
