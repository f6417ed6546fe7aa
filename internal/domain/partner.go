package domain

// Partner is a third-party organization (clinic, hospital, agency)
// associated with one or more surgery offerings.
type Partner struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website"`
	HelpType    string `json:"help_type"`

	// Logo is a base64-encoded image, stored as provided by the client.
	Logo string `json:"logo,omitempty"`
}

// Validate checks the fields required to list a partner.
func (p *Partner) Validate() error {
	if p.CompanyName == "" {
		return ErrEmptyCompanyName
	}
	return nil
}
