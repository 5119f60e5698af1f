package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por um código
// estável ("slot_unavailable", "invalid_transition"...). Os use cases só
// devolvem códigos; a tradução para status HTTP e mensagem fica nos handlers.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reporta se err (ou algum erro embrulhado) é um BusinessError
// com o código dado.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
