package models

type City struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DepartmentID uint   `json:"departmentId"`
}

type Department struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
