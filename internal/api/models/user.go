package models

// User represents a registered user in the database.
type User struct {
	ID             int64  `db:"id"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
}

// CredentialsForm is the OAuth2 password form posted to /login.
// The username field carries the user's email address.
type CredentialsForm struct {
	Username string `form:"username" binding:"required,max=255"`
	Password string `form:"password" binding:"required"`
}

// RegistrationForm is posted to /register. The password is capped in bytes, the unit bcrypt reads.
type RegistrationForm struct {
	Username string `form:"username" binding:"required,max=255"`
	Password string `form:"password" binding:"required,maxbytes=72"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
