package forms

import (
	"errors"
	"regexp"
	"strings"
)

const minPasswordLength = 8

var (
	errPasswordTooShort   = errors.New("This password is too short. It must contain at least 8 characters.")
	errPasswordNumeric    = errors.New("This password is entirely numeric.")
	errPasswordCommon     = errors.New("This password is too common.")
	errPasswordTooSimilar = errors.New("The password is too similar to your personal information.")

	attrSplit = regexp.MustCompile(`\W+`)
)

// ValidatePassword applies the account password policy. attrs are the user's
// username, names and email.
func ValidatePassword(password string, attrs ...string) error {
	if len([]rune(password)) < minPasswordLength {
		return errPasswordTooShort
	}
	if isNumeric(password) {
		return errPasswordNumeric
	}
	lower := strings.ToLower(password)
	if _, ok := commonPasswords[lower]; ok {
		return errPasswordCommon
	}
	if tooSimilar(lower, attrs) {
		return errPasswordTooSimilar
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func tooSimilar(password string, attrs []string) bool {
	for _, attr := range attrs {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			continue
		}
		parts := append([]string{attr}, attrSplit.Split(attr, -1)...)
		for _, part := range parts {
			if len(part) < 3 {
				continue
			}
			if strings.Contains(password, part) || strings.Contains(part, password) {
				return true
			}
		}
	}
	return false
}

var commonPasswords = map[string]struct{}{}

func init() {
	for _, p := range strings.Fields(commonPasswordList) {
		commonPasswords[p] = struct{}{}
	}
}

const commonPasswordList = `
123456 password 12345678 qwerty 123456789 12345 1234 111111 1234567 dragon
123123 baseball abc123 football monkey letmein 696969 shadow master 666666
qwertyuiop 123321 mustang 1234567890 michael 654321 superman 1qaz2wsx 7777777
121212 000000 qazwsx 123qwe killer trustno1 jordan jennifer zxcvbnm asdfgh
hunter buster soccer harley batman andrew tigger sunshine iloveyou 2000
charlie robert thomas hockey ranger daniel starwars klaster 112233 george
computer michelle jessica pepper 1111 zxcvbn 555555 11111111 131313 freedom
777777 pass maggie 159753 aaaaaa ginger princess joshua cheese amanda summer
love ashley nicole chelsea biteme matthew access yankees 987654321 dallas
austin thunder taylor matrix passw0rd password1 password123 welcome welcome1
admin admin123 administrator changeme secret qwerty123 qwerty1 iloveyou1
football1 baseball1 abcd1234 abcdefgh sunshine1 princess1 letmein1 trustno1
monkey123 dragon123 master123 whatever starwars1 superman1 blahblah
`
