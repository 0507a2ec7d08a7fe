package dto

type DashboardResponseDTO struct {
	Period        string  `json:"period" example:"Weekly"`
	TotalEarnings float64 `json:"total_earnings" example:"1000"`
	NetIncome     float64 `json:"net_income" example:"800"`
	RPM           float64 `json:"rpm" example:"2.5"`
	RPMChange     float64 `json:"rpm_change" example:"10"`
	TotalMiles    float64 `json:"total_miles" example:"400"`
	DeadheadMiles float64 `json:"deadhead_miles" example:"50"`
}
