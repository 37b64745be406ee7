package dto

import "pixbank/internal/money"

// UpdateUserRequest is the PATCH body for an account. Only present
// fields are written; the balance field is what the transfer workflow
// sends at the end of a confirmed transfer.
type UpdateUserRequest struct {
	Name                *string       `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TransactionPassword *string       `json:"transaction_password,omitempty" validate:"omitempty,numeric,min=4,max=8"`
	Balance             *money.Amount `json:"balance,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.TransactionPassword == nil && r.Balance == nil
}
