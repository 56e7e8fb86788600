package gmail

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}
