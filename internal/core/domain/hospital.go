package domain

import "slices"

// Department groups doctors. UserID is the account that created it.
type Department struct {
	ID          string `json:"id"          bson:"_id"`
	Name        string `json:"name"        bson:"name"`
	Description string `json:"description" bson:"description"`
	UserID      string `json:"userId"      bson:"user_id"`
}

// Doctor belongs to exactly one department.
type Doctor struct {
	ID           string `json:"id"           bson:"_id"`
	Name         string `json:"name"         bson:"name"`
	Age          int    `json:"age"          bson:"age"`
	BloodType    string `json:"bloodType"    bson:"blood_type"`
	DepartmentID string `json:"departmentId" bson:"department_id"`
	UserID       string `json:"userId"       bson:"user_id"`
}

// Operation is performed by a single doctor.
type Operation struct {
	ID          string `json:"id"          bson:"_id"`
	Name        string `json:"name"        bson:"name"`
	Description string `json:"description" bson:"description"`
	DoctorID    string `json:"doctorId"    bson:"doctor_id"`
	UserID      string `json:"userId"      bson:"user_id"`
}

// BloodTypes lists the accepted Doctor.BloodType values. Empty means unknown.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// IsKnownBloodType reports whether bt is empty or one of BloodTypes.
func IsKnownBloodType(bt string) bool {
	return bt == "" || slices.Contains(BloodTypes, bt)
}
