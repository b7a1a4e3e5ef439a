package constvars

const (
	RegexContainAtLeastOneNumber    = `[0-9]`
	RegexContainAtLeastOneUppercase = `[A-Z]`
	RegexInternationalPhoneNumber   = `^\+?[1-9]\d{6,14}$`
)
