package domain

// TierList is a priced package of service-level options associated with a
// surgery offering. Each surgery has at most one tier list row per tier.
type TierList struct {
	ID                     int64  `json:"id"`
	Tier                   string `json:"tier"`
	SurgeryID              int64  `json:"surgery_id"`
	VisaSponsorship        string `json:"visa_sponsorship"`
	FlightType             string `json:"flight_type"`
	NumberFamilyMembers    string `json:"number_family_members"`
	HospitalAccommodations string `json:"hospital_accommodations"`
	Hotel                  string `json:"hotel"`
	DurationStay           string `json:"duration_stay"`
	TourismPackage         string `json:"tourism_package"`
	PostSurgeryMonitoring  string `json:"post_surgery_monitoring"`
	Price                  string `json:"price"`
}

// Validate checks the fields required for a sellable package.
func (t *TierList) Validate() error {
	if t.Tier == "" {
		return ErrEmptyTierName
	}
	if t.SurgeryID == 0 {
		return ErrMissingSurgeryRef
	}
	return nil
}
