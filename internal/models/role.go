package models

// Papel do usuário como enumeração fechada, sem strings soltas
// espalhadas pelos call sites.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
