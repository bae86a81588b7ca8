package models

type Settings struct {
	ShowPasswords     bool   `yaml:"show_passwords"`
	SkipVersionUpdate string `yaml:"skip_version_update"`
}

// PasswordEchoHidden reports whether password inputs should be masked.
func (s *Settings) PasswordEchoHidden() bool {
	return !s.ShowPasswords
}
