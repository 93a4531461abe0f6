package constants

// Status presensi harian
const (
	PresenceStatusAlpha     = "ALPHA" // default: belum tercatat hadir
	PresenceStatusPresence  = "PRESENCE"
	PresenceStatusSick      = "SICK"
	PresenceStatusPermitted = "PERMITTED"
)

var PresenceStatuses = []string{
	PresenceStatusAlpha,
	PresenceStatusPresence,
	PresenceStatusSick,
	PresenceStatusPermitted,
}

// Jenis device sumber presensi
const (
	DeviceTypeNone            = "none"
	DeviceTypeRFID            = "rfid"
	DeviceTypeFaceRecognition = "face_recognition"
)

var DeviceTypes = []string{
	DeviceTypeNone,
	DeviceTypeRFID,
	DeviceTypeFaceRecognition,
}

// Jenis institusi
const (
	InstitutionTypeCompany = "company"
	InstitutionTypeSchool  = "school"
)

var InstitutionTypes = []string{
	InstitutionTypeCompany,
	InstitutionTypeSchool,
}

func IsValidPresenceStatus(s string) bool {
	for _, v := range PresenceStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidInstitutionType(s string) bool {
	for _, v := range InstitutionTypes {
		if v == s {
			return true
		}
	}
	return false
}
