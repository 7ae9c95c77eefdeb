// Package auth implementa la verificación de la password de borrado con
// PBKDF2-SHA512, con los mismos parámetros que la aplicación de escritorio
// original (10000 iteraciones, clave de 64 bytes, salt de 16 bytes en hex):
// los snapshots existentes siguen siendo verificables.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/corsairpublic-create/sample-buddy-log/internal/domain/entity"
)

const (
	iterations = 10000
	keyLen     = 64
	saltBytes  = 16
)

// PBKDF2Authenticator implementa inventory.Authenticator.
type PBKDF2Authenticator struct{}

// New construye el autenticador.
func New() *PBKDF2Authenticator { return &PBKDF2Authenticator{} }

// Hash deriva salt y hash nuevos para la password.
// El salt participa en la derivación como cadena hex, igual que en el
// pbkdf2Sync original.
func (PBKDF2Authenticator) Hash(password string) entity.PasswordHash {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		// rand.Read solo falla si el sistema no tiene entropía; sin ella no
		// hay forma segura de continuar.
		panic(err)
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha512.New)
	return entity.PasswordHash{Salt: salt, Hash: hex.EncodeToString(key)}
}

// Verify re-deriva con el salt almacenado y compara en tiempo constante.
func (PBKDF2Authenticator) Verify(stored entity.PasswordHash, password string) bool {
	if stored.Salt == "" || stored.Hash == "" {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(stored.Salt), iterations, keyLen, sha512.New)
	return subtle.ConstantTimeCompare([]byte(hex.EncodeToString(key)), []byte(stored.Hash)) == 1
}
