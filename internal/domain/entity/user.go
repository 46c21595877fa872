package entity

import "time"

// User representa una identidad registrada en la plataforma. El UID (ID) es el
// sujeto que aparece en los tokens y en la colección owners; el rol de owner
// NO vive aquí (ver Owner).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity es la vista de solo lectura de un usuario autenticado que circula
// por sesión y guards: el sujeto opaco más el email opcional.
type Identity struct {
	UID   string
	Email string
}
