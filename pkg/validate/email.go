package validate

import "regexp"

var emailRe = regexp.MustCompile(`^.+@.+\..+$`)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}
