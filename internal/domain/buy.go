package domain

// Buy records a customer's purchase of a surgery package together with the
// scanned documents collected during visa and travel preparation. Document
// fields are raw bytes; JSON encoding carries them base64-encoded.
type Buy struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	SurgeryID    int64  `json:"surgery_id"`
	TierListID   int64  `json:"tier_list_id"`
	Price        string `json:"price"`
	SchengenArea bool   `json:"schengen_area"`

	ValidPhoto             []byte `json:"valid_photo,omitempty"`
	IDScan                 []byte `json:"id_scan,omitempty"`
	MedicalDossier         []byte `json:"medical_dossier,omitempty"`
	TripClearanceDoc       []byte `json:"trip_clearance_doc,omitempty"`
	OralCareImplantPlan    []byte `json:"oral_care_implant_plan,omitempty"`
	HairCareImplantPlan    []byte `json:"hair_care_implant_plan,omitempty"`
	VisaDocuments          []byte `json:"visa_documents,omitempty"`
	VisaApplicationForm    []byte `json:"visa_application_form,omitempty"`
	IdenticalPhotos        []byte `json:"identical_photos,omitempty"`
	PassportCopy           []byte `json:"passport_copy,omitempty"`
	MedicalTravelInsurance []byte `json:"medical_travel_insurance,omitempty"`
	ProofOfFinancialMeans  []byte `json:"proof_of_financial_means,omitempty"`
	GuaranteeLetter        []byte `json:"guarantee_letter,omitempty"`
}

// Validate checks the references required to record a purchase.
func (b *Buy) Validate() error {
	if b.CustomerID == 0 {
		return ErrMissingCustomerRef
	}
	if b.SurgeryID == 0 {
		return ErrMissingSurgeryRef
	}
	if b.TierListID == 0 {
		return ErrMissingTierListRef
	}
	return nil
}

// Document returns the named document blob, or nil if the name is unknown
// or the document was never uploaded. Names match the JSON field names.
func (b *Buy) Document(name string) []byte {
	switch name {
	case "valid_photo":
		return b.ValidPhoto
	case "id_scan":
		return b.IDScan
	case "medical_dossier":
		return b.MedicalDossier
	case "trip_clearance_doc":
		return b.TripClearanceDoc
	case "oral_care_implant_plan":
		return b.OralCareImplantPlan
	case "hair_care_implant_plan":
		return b.HairCareImplantPlan
	case "visa_documents":
		return b.VisaDocuments
	case "visa_application_form":
		return b.VisaApplicationForm
	case "identical_photos":
		return b.IdenticalPhotos
	case "passport_copy":
		return b.PassportCopy
	case "medical_travel_insurance":
		return b.MedicalTravelInsurance
	case "proof_of_financial_means":
		return b.ProofOfFinancialMeans
	case "guarantee_letter":
		return b.GuaranteeLetter
	}
	return nil
}
