/*
 * Copyright 2025 filmoteca.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMinLen is the minimum accepted plain password length.
const PasswordMinLen = 8

// ErrPasswordTooShort rejects passwords below the minimum length before any
// hashing work happens.
var ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

// HashPassword derives a bcrypt hash from a plain password.
func HashPassword(password string) (string, error) {
	if len(password) < PasswordMinLen {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain password matches the stored hash.
func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
