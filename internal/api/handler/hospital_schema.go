package handler

import "github.com/ligonine/hospital-system/internal/core/ports"

// --- Request types ---

type departmentRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (r departmentRequest) toInput() ports.DepartmentInput {
	return ports.DepartmentInput{Name: r.Name, Description: r.Description}
}

type doctorRequest struct {
	Name      string `json:"name"      validate:"required,max=200"`
	Age       int    `json:"age"       validate:"gte=0,lte=150"`
	BloodType string `json:"bloodType" validate:"bloodtype"`
}

func (r doctorRequest) toInput() ports.DoctorInput {
	return ports.DoctorInput{Name: r.Name, Age: r.Age, BloodType: r.BloodType}
}

type operationRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (r operationRequest) toInput() ports.OperationInput {
	return ports.OperationInput{Name: r.Name, Description: r.Description}
}
