package service

import "errors"

// Sentinel errors mapped to HTTP status codes by the handlers.
var (
	ErrInvalidCredentials = errors.New("Credenciais invalidas")
	ErrNotFound           = errors.New("Registro nao encontrado")
	// ErrWrongPassword is returned when the password re-entry required to
	// delete an administrator does not match the demo constant.
	ErrWrongPassword = errors.New("Senha incorreta")
)
