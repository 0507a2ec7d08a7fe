package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Profile struct {
	DriverName  string `db:"driver_name"  json:"driver_name"`
	CompanyName string `db:"company_name" json:"company_name"`
	Phone       string `db:"phone"        json:"phone"`
}

type StatementType string

const (
	StatementTypeRegular  StatementType = "regular"
	StatementTypeDeadhead StatementType = "deadhead"
)

func (t StatementType) Valid() bool {
	return t == StatementTypeRegular || t == StatementTypeDeadhead
}

// StatementDraft is a statement that has not been persisted yet.
type StatementDraft struct {
	Date          string        `json:"date"`
	Amount        float64       `json:"amount"`
	Miles         float64       `json:"miles"`
	DeadheadMiles *float64      `json:"deadhead_miles,omitempty"`
	Type          StatementType `json:"type"`
}

type Statement struct {
	ID            string        `db:"id"             json:"id"`
	UserID        int           `db:"user_id"        json:"-"`
	Date          string        `db:"date"           json:"date"`
	Amount        float64       `db:"amount"         json:"amount"`
	Miles         float64       `db:"miles"          json:"miles"`
	DeadheadMiles *float64      `db:"deadhead_miles" json:"deadhead_miles,omitempty"`
	Type          StatementType `db:"type"           json:"type"`
	CreatedAt     time.Time     `db:"created_at"     json:"created_at"`
}

// LoadDraft is a single haul that has not been persisted yet.
type LoadDraft struct {
	Pickup  string  `json:"pickup"`
	Dropoff string  `json:"dropoff"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
	Miles   float64 `json:"miles"`
}

type Load struct {
	ID        string    `db:"id"         json:"id"`
	UserID    int       `db:"user_id"    json:"-"`
	Pickup    string    `db:"pickup"     json:"pickup"`
	Dropoff   string    `db:"dropoff"    json:"dropoff"`
	Amount    float64   `db:"amount"     json:"amount"`
	Date      string    `db:"date"       json:"date"`
	Miles     float64   `db:"miles"      json:"miles"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Ingestion holds the records persisted from one extraction response.
type Ingestion struct {
	Statement *Statement `json:"statement,omitempty"`
	Loads     []Load     `json:"loads"`
}

type DashboardStats struct {
	TotalEarnings float64 `json:"total_earnings"`
	NetIncome     float64 `json:"net_income"`
	RPM           float64 `json:"rpm"`
	RPMChange     float64 `json:"rpm_change"`
	TotalMiles    float64 `json:"total_miles"`
	DeadheadMiles float64 `json:"deadhead_miles"`
}
