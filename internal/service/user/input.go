package user

import (
	"regexp"

	"github.com/readify-app/readify-backend/internal/domain"
)

var walletAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{8,64}$`)

// SetWalletInput holds parameters for the wallet binding operation.
// An empty address unbinds the current wallet.
type SetWalletInput struct {
	Address string
}

// Validate validates the wallet binding input.
func (i SetWalletInput) Validate() error {
	var errs []domain.FieldError

	if i.Address != "" && !walletAddressRe.MatchString(i.Address) {
		errs = append(errs, domain.FieldError{Field: "address", Message: "must be a 0x-prefixed hex address"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
