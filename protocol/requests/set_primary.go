package requests

// SetPrimary represents a request to make Name the primary name of Address.
type SetPrimary struct {
	Name    string `json:"name" validate:"required,name"`
	Address string `json:"address" validate:"required,bech32"`
}

// Validate checks the validity of the SetPrimary request.
func (r *SetPrimary) Validate() error {
	return validate(r)
}
