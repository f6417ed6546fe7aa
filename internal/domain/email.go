package domain

// Email records an outbound notification after it has been handed to the
// mail relay. Rows are written only for messages the relay accepted.
type Email struct {
	ID       int64  `json:"id"`
	MailFrom string `json:"mail_from"`
	MailTo   string `json:"mail_to"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// Validate checks the fields required to deliver a message.
func (e *Email) Validate() error {
	if e.MailTo == "" {
		return ErrEmptyRecipient
	}
	if e.Subject == "" {
		return ErrEmptySubject
	}
	return nil
}
