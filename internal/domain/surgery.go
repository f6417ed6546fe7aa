package domain

// Surgery is a surgical offering in the catalogue, provided by a partner
// clinic or hospital.
type Surgery struct {
	ID                 int64  `json:"id"`
	Surgery            string `json:"surgery"`
	SurgeryDescription string `json:"surgery_description"`
	PartnerID          int64  `json:"partner_id"`
}

// Validate checks that the surgery carries the required catalogue fields.
func (s *Surgery) Validate() error {
	if s.Surgery == "" {
		return ErrEmptySurgeryName
	}
	if s.SurgeryDescription == "" {
		return ErrEmptySurgeryDescription
	}
	return nil
}
