package dto

type ProfileRequestDTO struct {
	DriverName  string `json:"driver_name" example:"Sam Carter"`
	CompanyName string `json:"company_name" example:"Carter Freight LLC"`
	Phone       string `json:"phone" example:"+1 555 0100"`
}

type ProfileResponseDTO struct {
	DriverName  string `json:"driver_name" example:"Sam Carter"`
	CompanyName string `json:"company_name" example:"Carter Freight LLC"`
	Phone       string `json:"phone" example:"+1 555 0100"`
}
