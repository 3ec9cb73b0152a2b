package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrCorruptedSnapshot  = errors.New("simulação salva corrompida")
	ErrAdvisorUnavailable = errors.New("assistente de IA indisponível")
	ErrStorageDisabled    = errors.New("armazenamento de relatórios não configurado")
)
