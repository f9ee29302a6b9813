package core

type UserRecord struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type FeedbackRecord struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
}

type RegisterMessage struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type AuthMessage struct {
	Username string
	Password string
}

type FeedbackMessage struct {
	Username string
	Title    string
	Content  string
}
