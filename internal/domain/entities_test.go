package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSurgeryValidate(t *testing.T) {
	t.Parallel()

	valid := Surgery{Surgery: "Dental implants", SurgeryDescription: "Full arch", PartnerID: 1}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Surgery = ""
	assert.ErrorIs(t, missingName.Validate(), ErrEmptySurgeryName)

	missingDescription := valid
	missingDescription.SurgeryDescription = ""
	assert.ErrorIs(t, missingDescription.Validate(), ErrEmptySurgeryDescription)
}

func TestTierListValidate(t *testing.T) {
	t.Parallel()

	valid := TierList{Tier: "gold", SurgeryID: 1}
	assert.NoError(t, valid.Validate())

	missingTier := valid
	missingTier.Tier = ""
	assert.ErrorIs(t, missingTier.Validate(), ErrEmptyTierName)

	missingSurgery := valid
	missingSurgery.SurgeryID = 0
	assert.ErrorIs(t, missingSurgery.Validate(), ErrMissingSurgeryRef)
}

func TestPartnerValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&Partner{CompanyName: "Acme Clinic"}).Validate())
	assert.ErrorIs(t, (&Partner{}).Validate(), ErrEmptyCompanyName)
}

func TestCustomerValidate(t *testing.T) {
	t.Parallel()

	valid := Customer{FullName: "Jane Doe", ContactEmail: "jane@example.com"}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.FullName = ""
	assert.ErrorIs(t, missingName.Validate(), ErrEmptyFullName)

	missingEmail := valid
	missingEmail.ContactEmail = ""
	assert.ErrorIs(t, missingEmail.Validate(), ErrEmptyContactEmail)
}

func TestBuyValidate(t *testing.T) {
	t.Parallel()

	valid := Buy{CustomerID: 1, SurgeryID: 2, TierListID: 3}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Buy)
		want   error
	}{
		{"missing customer", func(b *Buy) { b.CustomerID = 0 }, ErrMissingCustomerRef},
		{"missing surgery", func(b *Buy) { b.SurgeryID = 0 }, ErrMissingSurgeryRef},
		{"missing tier list", func(b *Buy) { b.TierListID = 0 }, ErrMissingTierListRef},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			buy := valid
			tc.mutate(&buy)
			assert.ErrorIs(t, buy.Validate(), tc.want)
		})
	}
}

func TestBuyDocument(t *testing.T) {
	t.Parallel()

	buy := Buy{
		PassportCopy:   []byte("passport"),
		MedicalDossier: []byte("dossier"),
	}

	assert.Equal(t, []byte("passport"), buy.Document("passport_copy"))
	assert.Equal(t, []byte("dossier"), buy.Document("medical_dossier"))
	assert.Nil(t, buy.Document("valid_photo"))
	assert.Nil(t, buy.Document("tax_return"))
	assert.Nil(t, buy.Document(""))
}

func TestEmailValidate(t *testing.T) {
	t.Parallel()

	valid := Email{MailTo: "a@example.com", Subject: "Hello"}
	assert.NoError(t, valid.Validate())

	missingTo := valid
	missingTo.MailTo = ""
	assert.ErrorIs(t, missingTo.Validate(), ErrEmptyRecipient)

	missingSubject := valid
	missingSubject.Subject = ""
	assert.ErrorIs(t, missingSubject.Validate(), ErrEmptySubject)
}
