// Package entity defines data structures shared by the web layer.
package entity

// Msg represents a standard JSON response with success status, message text,
// and optional data object.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// SiteSettings is the fixed, enumerated settings surface of the CMS. Form
// submissions bind only these fields; unknown keys a caller submits are
// dropped on the floor rather than stored.
type SiteSettings struct {
	ContactAddress  string `json:"contactAddress" form:"contactAddress"`
	ContactEmail    string `json:"contactEmail" form:"contactEmail"`
	SocialFacebook  string `json:"socialFacebook" form:"socialFacebook"`
	SocialInstagram string `json:"socialInstagram" form:"socialInstagram"`
	SocialPinterest string `json:"socialPinterest" form:"socialPinterest"`
	SmtpHost        string `json:"smtpHost" form:"smtpHost"`
	SmtpPort        string `json:"smtpPort" form:"smtpPort"`
	SmtpUser        string `json:"smtpUser" form:"smtpUser"`
	SmtpPass        string `json:"smtpPass" form:"smtpPass"`
}

// Pairs returns the settings as key/value pairs, keyed by the stored
// setting key.
func (s *SiteSettings) Pairs() map[string]string {
	return map[string]string{
		"contactAddress":  s.ContactAddress,
		"contactEmail":    s.ContactEmail,
		"socialFacebook":  s.SocialFacebook,
		"socialInstagram": s.SocialInstagram,
		"socialPinterest": s.SocialPinterest,
		"smtpHost":        s.SmtpHost,
		"smtpPort":        s.SmtpPort,
		"smtpUser":        s.SmtpUser,
		"smtpPass":        s.SmtpPass,
	}
}

// Load fills the struct from stored key/value pairs, ignoring keys outside
// the fixed set.
func (s *SiteSettings) Load(pairs map[string]string) {
	s.ContactAddress = pairs["contactAddress"]
	s.ContactEmail = pairs["contactEmail"]
	s.SocialFacebook = pairs["socialFacebook"]
	s.SocialInstagram = pairs["socialInstagram"]
	s.SocialPinterest = pairs["socialPinterest"]
	s.SmtpHost = pairs["smtpHost"]
	s.SmtpPort = pairs["smtpPort"]
	s.SmtpUser = pairs["smtpUser"]
	s.SmtpPass = pairs["smtpPass"]
}
