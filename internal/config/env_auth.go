package config

import (
	"strings"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/file"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Keys of environment variables.
const (
	UsernameKey     string = "INWX_USERNAME"
	PasswordKey     string = "INWX_PASSWORD"
	PasswordFileKey string = "INWX_PASSWORD_FILE"
	APIURLKey       string = "INWX_API_URL"
)

func readPasswordFile(ppfmt pp.PP) (string, bool) {
	passwordFile := Getenv(PasswordFileKey)
	if passwordFile == "" {
		return "", true
	}

	password, ok := file.ReadString(ppfmt, passwordFile)
	if !ok {
		return "", false
	}

	if password == "" {
		ppfmt.Errorf(pp.EmojiUserError, "The file specified by %s does not contain a password", PasswordFileKey)
		return "", false
	}

	return password, true
}

func readPassword(ppfmt pp.PP) (string, bool) {
	passwordPlain := Getenv(PasswordKey)

	passwordFile, ok := readPasswordFile(ppfmt)
	if !ok {
		return "", false
	}

	switch {
	case passwordPlain != "" && passwordFile != "" && passwordPlain != passwordFile:
		ppfmt.Errorf(pp.EmojiUserError,
			"The value of %s does not match the password found in the file specified by %s; they must be the same",
			PasswordKey, PasswordFileKey)
		return "", false
	case passwordPlain != "":
		return passwordPlain, true
	case passwordFile != "":
		return passwordFile, true
	default:
		ppfmt.Errorf(pp.EmojiUserError, "Needs either %s or %s", PasswordKey, PasswordFileKey)
		return "", false
	}
}

func readAPIURL(ppfmt pp.PP, field *string) bool {
	switch val := Getenv(APIURLKey); strings.ToLower(val) {
	case "":
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", APIURLKey, *field)
		return true
	case "live", "production":
		*field = api.LiveURL
		return true
	case "ote", "test", "testing":
		*field = api.OTEURL
		return true
	default:
		if !strings.HasPrefix(val, "https://") && !strings.HasPrefix(val, "http://") {
			ppfmt.Errorf(pp.EmojiUserError, "%s (%q) is neither a URL nor one of \"live\" and \"ote\"", APIURLKey, val)
			return false
		}
		*field = val
		return true
	}
}

// ReadAuth reads INWX_USERNAME, INWX_PASSWORD, INWX_PASSWORD_FILE, and INWX_API_URL.
func ReadAuth(ppfmt pp.PP, field *api.Auth) bool {
	username := Getenv(UsernameKey)
	if username == "" {
		ppfmt.Errorf(pp.EmojiUserError, "Needs %s", UsernameKey)
		return false
	}

	password, ok := readPassword(ppfmt)
	if !ok {
		return false
	}

	url := field.URL
	if url == "" {
		url = api.LiveURL
	}
	if !readAPIURL(ppfmt, &url) {
		return false
	}

	*field = api.Auth{Username: username, Password: password, URL: url}
	return true
}
