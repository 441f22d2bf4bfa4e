package domain

type SendMessageCommand struct {
	SenderID   UserID
	ReceiverID UserID
	Text       string
	Image      string
}

type MarkReadCommand struct {
	MessageID string
	CallerID  UserID
}

type SignupCommand struct {
	FullName string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}
