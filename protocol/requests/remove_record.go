package requests

// RemoveRecord represents a request to unbind an address from a name.
type RemoveRecord struct {
	Name string `json:"name" validate:"required,name"`

	// Prefix defaults to the prefix of Address.
	Prefix  string `json:"bech32Prefix"`
	Address string `json:"address" validate:"required,bech32"`

	// ReplacementPrimary, if set, becomes the primary name of Address
	// before the record is removed.
	ReplacementPrimary string `json:"replacementPrimary" validate:"omitempty,name"`
}

// Validate checks the validity of the RemoveRecord request.
func (r *RemoveRecord) Validate() error {
	return validate(r)
}
