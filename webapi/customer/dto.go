package customer

// RegisterResponse carries the number of the newly opened account.
type RegisterResponse struct {
	AccountNumber uint `json:"account_number"`
}
