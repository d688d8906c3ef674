package domain

import "time"

type OrgType string

const (
	OrgTypeGarage   OrgType = "garage"
	OrgTypeSupplier OrgType = "supplier"
)

type Organization struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Type      OrgType   `json:"type"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedOn time.Time `json:"created_on"`
}
