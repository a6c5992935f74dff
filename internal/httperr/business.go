package httperr

import "errors"

// ======================================================
// BUSINESS ERRORS
// ======================================================

// BusinessError é o erro de regra de negócio que atravessa domínio e
// use case. O Code é estável (vai para o cliente); a mensagem humana
// fica a cargo do handler.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// AsBusiness extrai o BusinessError da cadeia, se houver.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
