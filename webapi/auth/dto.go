package auth

// LoginInput represents the request body for PIN login.
type LoginInput struct {
	AccountNumber uint   `json:"account_number" validate:"required"`
	PIN           string `json:"pin" validate:"required"`
}

// IdentityInput identifies the owner of an account during PIN recovery.
type IdentityInput struct {
	AccountNumber uint   `json:"account_number" validate:"required"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	DateOfBirth   string `json:"dob" validate:"required"`
}

// ResetPINInput is IdentityInput plus the replacement PIN.
type ResetPINInput struct {
	IdentityInput
	NewPIN string `json:"new_pin" validate:"required"`
}

// ChangePINInput represents the request body for a PIN change.
type ChangePINInput struct {
	OldPIN string `json:"old_pin" validate:"required"`
	NewPIN string `json:"new_pin" validate:"required"`
}
