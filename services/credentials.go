// services/credentials.go
package services

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"game-showcase-system/models"
	"game-showcase-system/store"
)

// Credential lookup is an ordered list of strategies, first match wins:
// the inline password on the User record, then the legacy "user:<name>"
// record kept for accounts created before passwords moved inline. New
// accounts always carry the password inline; the legacy strategy exists
// only so old accounts keep working and can be dropped once they are gone.

type credentialCheck func(kv *store.KV, user *models.User, password string) (bool, error)

var credentialChecks = []credentialCheck{
	checkInlinePassword,
	checkLegacyRecord,
}

// verifyCredentials resolves username+password against the users
// collection. The returned user is nil when no strategy matched.
func verifyCredentials(kv *store.KV, username, password string) (*models.User, error) {
	users, _, err := store.LoadCollection(kv, store.KeyUsers, store.DefaultUsers())
	if err != nil {
		return nil, err
	}
	var user *models.User
	for i := range users {
		if users[i].Username == username {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, nil
	}
	for _, check := range credentialChecks {
		ok, err := check(kv, user, password)
		if err != nil {
			return nil, err
		}
		if ok {
			return user, nil
		}
	}
	return nil, nil
}

func checkInlinePassword(_ *store.KV, user *models.User, password string) (bool, error) {
	if user.Password == "" {
		return false, nil
	}
	return passwordMatches(user.Password, password), nil
}

func checkLegacyRecord(kv *store.KV, user *models.User, password string) (bool, error) {
	cred, _, ok, err := store.Get[models.LegacyCredential](kv, store.LegacyUserKey(user.Username))
	if err != nil {
		return false, err
	}
	if !ok || cred.Password == "" {
		return false, nil
	}
	return passwordMatches(cred.Password, password), nil
}

// passwordMatches compares a stored credential against the submitted one.
// Stored bcrypt hashes are verified as hashes; anything else is a legacy
// plaintext value compared in constant time.
func passwordMatches(stored, submitted string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

// hashPassword prepares a password for storage on create/update.
func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
