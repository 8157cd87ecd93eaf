package views

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrLabelsFile = errors.New("views.invalid_labels_file")

// Labels hold every user-visible string. Empty fields fall back to the
// defaults for the configured pass type.
type Labels struct {
	Title               string `yaml:"title"`
	Instruction         string `yaml:"instruction"`
	PasskeyPlaceholder  string `yaml:"passkey_placeholder"`
	EmailPlaceholder    string `yaml:"email_placeholder"`
	PasswordPlaceholder string `yaml:"password_placeholder"`
	Submit              string `yaml:"submit"`
	Logout              string `yaml:"logout"`
	LoggedOut           string `yaml:"logged_out"`

	PasskeyRequired      string `yaml:"passkey_required"`
	IncorrectPasskey     string `yaml:"incorrect_passkey"`
	CredentialsRequired  string `yaml:"credentials_required"`
	InvalidCredentials   string `yaml:"invalid_credentials"`
	AlreadyAuthenticated string `yaml:"already_authenticated"`
	Unauthorized         string `yaml:"unauthorized"`
	InternalError        string `yaml:"internal_error"`
}

// DefaultLabels returns the built-in English labels. emailPassword selects
// the instruction for the email and password form.
func DefaultLabels(emailPassword bool) Labels {
	l := Labels{
		Title:                "Authentication",
		Instruction:          "Enter the pass key to continue",
		PasskeyPlaceholder:   "Pass key",
		EmailPlaceholder:     "Email",
		PasswordPlaceholder:  "Password",
		Submit:               "Submit",
		Logout:               "Log out",
		LoggedOut:            "You have been logged out.",
		PasskeyRequired:      "Passkey is required.",
		IncorrectPasskey:     "Incorrect passkey.",
		CredentialsRequired:  "Email and password are required.",
		InvalidCredentials:   "Invalid credentials.",
		AlreadyAuthenticated: "You are already authenticated.",
		Unauthorized:         "Not authorized.",
		InternalError:        "Something went wrong. Please try again.",
	}
	if emailPassword {
		l.Instruction = "Enter your credentials to continue"
	}
	return l
}

// Merge returns l with every empty field taken from defaults.
func (l Labels) Merge(defaults Labels) Labels {
	pick := func(v, d string) string {
		if v == "" {
			return d
		}
		return v
	}
	return Labels{
		Title:                pick(l.Title, defaults.Title),
		Instruction:          pick(l.Instruction, defaults.Instruction),
		PasskeyPlaceholder:   pick(l.PasskeyPlaceholder, defaults.PasskeyPlaceholder),
		EmailPlaceholder:     pick(l.EmailPlaceholder, defaults.EmailPlaceholder),
		PasswordPlaceholder:  pick(l.PasswordPlaceholder, defaults.PasswordPlaceholder),
		Submit:               pick(l.Submit, defaults.Submit),
		Logout:               pick(l.Logout, defaults.Logout),
		LoggedOut:            pick(l.LoggedOut, defaults.LoggedOut),
		PasskeyRequired:      pick(l.PasskeyRequired, defaults.PasskeyRequired),
		IncorrectPasskey:     pick(l.IncorrectPasskey, defaults.IncorrectPasskey),
		CredentialsRequired:  pick(l.CredentialsRequired, defaults.CredentialsRequired),
		InvalidCredentials:   pick(l.InvalidCredentials, defaults.InvalidCredentials),
		AlreadyAuthenticated: pick(l.AlreadyAuthenticated, defaults.AlreadyAuthenticated),
		Unauthorized:         pick(l.Unauthorized, defaults.Unauthorized),
		InternalError:        pick(l.InternalError, defaults.InternalError),
	}
}

// Message returns the label for an error key, or "" for unknown keys.
func (l Labels) Message(key string) string {
	switch key {
	case "passkey_required":
		return l.PasskeyRequired
	case "incorrect_passkey":
		return l.IncorrectPasskey
	case "credentials_required":
		return l.CredentialsRequired
	case "invalid_credentials":
		return l.InvalidCredentials
	case "already_authenticated":
		return l.AlreadyAuthenticated
	case "unauthorized":
		return l.Unauthorized
	case "internal_server_error":
		return l.InternalError
	}
	return ""
}

// ParseLabels decodes YAML labels. Unknown keys are rejected.
func ParseLabels(data []byte) (Labels, error) {
	var l Labels
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return Labels{}, fmt.Errorf("%w: %v", ErrLabelsFile, err)
	}
	return l, nil
}

// LoadLabels reads YAML labels from path.
func LoadLabels(path string) (Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Labels{}, fmt.Errorf("%w: %v", ErrLabelsFile, err)
	}
	return ParseLabels(data)
}
