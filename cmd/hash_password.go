package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"docsuite-ads/internal/adapter/auth"
)

// hashPassword reads a password from the first line of in and writes the
// bcrypt hash expected in AUTH_ADMIN_PASSWORD_HASH to out.
func hashPassword(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		return errors.New("no password on stdin")
	}
	password := strings.TrimRight(sc.Text(), "\r")
	if password == "" {
		return errors.New("empty password")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
