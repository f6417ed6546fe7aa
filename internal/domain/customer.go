package domain

import "time"

// Customer is a medical-tourism client. National ID and passport number are
// optional because either document may identify the customer depending on
// their country of origin.
type Customer struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	ContactEmail     string    `json:"contact_email"`
	Birthdate        time.Time `json:"birthdate"`
	NationalIDNumber string    `json:"national_id_number,omitempty"`
	PassportNumber   string    `json:"passport_number,omitempty"`
	CountryOfOrigin  string    `json:"country_of_origin"`
	DeniedVisa       bool      `json:"denied_visa"`
}

// Validate checks the fields required to register a customer.
func (c *Customer) Validate() error {
	if c.FullName == "" {
		return ErrEmptyFullName
	}
	if c.ContactEmail == "" {
		return ErrEmptyContactEmail
	}
	return nil
}
